package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/upstream"
)

var ErrMealPlanNotFound = errors.New("meal plan not found")

// CreateMealPlanInput creates a plan plus one upstream mutation per meal.
type CreateMealPlanInput struct {
	Name        string
	Description string
	ClientID    string
	TrainerID   string
	Meals       []domain.Meal
}

// UpdateMealPlanInput carries the updatable plan fields.
type UpdateMealPlanInput struct {
	ID          string
	Name        *string
	Description *string
}

// MealPlanCreateResult reports the plan plus the outcome of the per-meal
// fan-out, so partially persisted plans are visible to the caller.
type MealPlanCreateResult struct {
	Plan         domain.MealPlan `json:"mealPlan"`
	MealsCreated int             `json:"mealsCreated"`
	MealsFailed  int             `json:"mealsFailed"`
	Errors       []string        `json:"errors,omitempty"`
}

type MealPlanService interface {
	GetAll(ctx context.Context, clientID string) ([]domain.MealPlan, error)
	GetByID(ctx context.Context, id string) (*domain.MealPlan, error)
	Create(ctx context.Context, input CreateMealPlanInput) (*MealPlanCreateResult, error)
	Update(ctx context.Context, input UpdateMealPlanInput) (*domain.MealPlan, error)
	Delete(ctx context.Context, id string) error
}

type mealPlanService struct {
	exec upstream.Executor
}

func NewMealPlanService(exec upstream.Executor) MealPlanService {
	return &mealPlanService{exec: exec}
}

func (s *mealPlanService) GetAll(ctx context.Context, clientID string) ([]domain.MealPlan, error) {
	var data upstream.MealPlansListData
	var err error
	if clientID == "" {
		err = s.exec.Execute(ctx, upstream.QueryAllMealPlans, nil, &data)
	} else {
		err = s.exec.Execute(ctx, upstream.QueryMealPlansByClient, map[string]any{"clientId": clientID}, &data)
	}
	if err != nil {
		return nil, err
	}
	return mapMealPlanNodes(data.MealPlansList.Nodes()), nil
}

func (s *mealPlanService) GetByID(ctx context.Context, id string) (*domain.MealPlan, error) {
	var data upstream.MealPlanData
	if err := s.exec.Execute(ctx, upstream.QueryMealPlanByID, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.MealPlan == nil {
		return nil, ErrMealPlanNotFound
	}
	plan := mapMealPlanNode(*data.MealPlan)
	return &plan, nil
}

// Create makes the plan, then fires one CreateMeal mutation per submitted
// meal and waits for all of them. Per-meal failures are collected and
// surfaced instead of being dropped, so the HTTP response only reports meals
// that were actually persisted.
func (s *mealPlanService) Create(ctx context.Context, input CreateMealPlanInput) (*MealPlanCreateResult, error) {
	var trainerID any
	if input.TrainerID != "" {
		trainerID = input.TrainerID
	}
	planVars := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"clientId":    input.ClientID,
		"trainerId":   trainerID,
	}
	var created upstream.CreateMealPlanData
	if err := s.exec.Execute(ctx, upstream.MutationCreateMealPlan, planVars, &created); err != nil {
		return nil, err
	}
	if err := created.MealPlanCreate.Err(); err != nil {
		return nil, err
	}
	if created.MealPlanCreate.MealPlan == nil {
		return nil, errors.New("upstream returned no meal plan for CreateMealPlan")
	}

	result := &MealPlanCreateResult{Plan: mapMealPlanNode(*created.MealPlanCreate.MealPlan)}
	if len(input.Meals) == 0 {
		return result, nil
	}

	persisted := make([]domain.Meal, 0, len(input.Meals))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(4)
	for _, meal := range input.Meals {
		g.Go(func() error {
			mealVars := map[string]any{
				"mealPlanId": result.Plan.ID,
				"name":       meal.Name,
				"calories":   meal.Calories,
				"carbs":      meal.Carbs,
				"fats":       meal.Fats,
				"protein":    meal.Protein,
			}
			var out upstream.CreateMealData
			err := s.exec.Execute(ctx, upstream.MutationCreateMeal, mealVars, &out)
			if err == nil {
				err = out.MealCreate.Err()
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.MealsFailed++
				result.Errors = append(result.Errors, fmt.Sprintf("meal %q: %v", meal.Name, err))
				return nil
			}
			result.MealsCreated++
			persisted = append(persisted, meal)
			return nil
		})
	}
	_ = g.Wait() // closures never return errors; failures live in result
	result.Plan.Meals = persisted
	return result, nil
}

func (s *mealPlanService) Update(ctx context.Context, input UpdateMealPlanInput) (*domain.MealPlan, error) {
	vars := map[string]any{"id": input.ID}
	if input.Name != nil {
		vars["name"] = *input.Name
	}
	if input.Description != nil {
		vars["description"] = *input.Description
	}

	var data upstream.UpdateMealPlanData
	if err := s.exec.Execute(ctx, upstream.MutationUpdateMealPlan, vars, &data); err != nil {
		return nil, err
	}
	if err := data.MealPlanUpdate.Err(); err != nil {
		return nil, err
	}
	if data.MealPlanUpdate.MealPlan == nil {
		return nil, ErrMealPlanNotFound
	}
	plan := mapMealPlanNode(*data.MealPlanUpdate.MealPlan)
	return &plan, nil
}

func (s *mealPlanService) Delete(ctx context.Context, id string) error {
	var data upstream.DeleteMealPlanData
	if err := s.exec.Execute(ctx, upstream.MutationDeleteMealPlan, map[string]any{"id": id}, &data); err != nil {
		return err
	}
	return data.MealPlanDelete.Err()
}
