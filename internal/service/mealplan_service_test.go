package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/service"
)

const createdPlanFixture = `{"mealPlanCreate":{"success":true,"mealPlan":{
  "id":"mp1","name":"Cutting Plan","description":"8 weeks",
  "client":{"id":"c1"},"trainer":null,"meals":null
}}}`

// The plan is created first, then one mutation per meal. A failing meal is
// reported, not persisted, and the returned plan lists only persisted meals.
func TestCreateMealPlanFanOut(t *testing.T) {
	exec := &mockExec{}
	exec.respond = func(query string, vars map[string]any, out any) error {
		switch {
		case strings.Contains(query, "mutation CreateMealPlan("):
			if vars["name"] != "Cutting Plan" || vars["clientId"] != "c1" {
				t.Errorf("plan vars = %v", vars)
			}
			fill(t, out, createdPlanFixture)
		case strings.Contains(query, "mutation CreateMeal("):
			if vars["mealPlanId"] != "mp1" {
				t.Errorf("mealPlanId = %v", vars["mealPlanId"])
			}
			if vars["name"] == "Lunch" {
				fill(t, out, `{"mealCreate":{"success":false,"errors":[{"message":"calories out of range"}]}}`)
				return nil
			}
			fill(t, out, `{"mealCreate":{"success":true,"meal":{"id":"m1"}}}`)
		default:
			t.Fatalf("unexpected operation: %s", query)
		}
		return nil
	}
	svc := service.NewMealPlanService(exec)

	result, err := svc.Create(context.Background(), service.CreateMealPlanInput{
		Name:     "Cutting Plan",
		ClientID: "c1",
		Meals: []domain.Meal{
			{Name: "Breakfast", Calories: 400},
			{Name: "Lunch", Calories: 90000},
			{Name: "Dinner", Calories: 600},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.MealsCreated != 2 || result.MealsFailed != 1 {
		t.Fatalf("created/failed = %d/%d", result.MealsCreated, result.MealsFailed)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Lunch") {
		t.Errorf("errors = %v", result.Errors)
	}
	if len(result.Plan.Meals) != 2 {
		t.Errorf("plan lists %d meals, want only the 2 persisted", len(result.Plan.Meals))
	}
	for _, meal := range result.Plan.Meals {
		if meal.Name == "Lunch" {
			t.Error("failed meal must not appear on the plan")
		}
	}
	if exec.callCount() != 4 {
		t.Errorf("made %d calls, want 4 (plan + 3 meals)", exec.callCount())
	}
}

func TestCreateMealPlanWithoutMeals(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, createdPlanFixture)
		return nil
	}}
	svc := service.NewMealPlanService(exec)

	result, err := svc.Create(context.Background(), service.CreateMealPlanInput{Name: "Cutting Plan", ClientID: "c1"})
	if err != nil {
		t.Fatal(err)
	}
	if result.MealsCreated != 0 || result.MealsFailed != 0 {
		t.Errorf("result = %+v", result)
	}
	if exec.callCount() != 1 {
		t.Errorf("made %d calls, want 1", exec.callCount())
	}
}

func TestCreateMealPlanFailureStopsBeforeMeals(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, `{"mealPlanCreate":{"success":false,"errors":[{"message":"client not found"}]}}`)
		return nil
	}}
	svc := service.NewMealPlanService(exec)

	_, err := svc.Create(context.Background(), service.CreateMealPlanInput{
		Name:     "Cutting Plan",
		ClientID: "ghost",
		Meals:    []domain.Meal{{Name: "Breakfast"}},
	})
	if err == nil || err.Error() != "client not found" {
		t.Fatalf("err = %v", err)
	}
	if exec.callCount() != 1 {
		t.Errorf("made %d calls, want 1 (no meal mutations after a failed plan)", exec.callCount())
	}
}

func TestGetMealPlanByIDNotFound(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, `{"mealPlan":null}`)
		return nil
	}}
	svc := service.NewMealPlanService(exec)

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, service.ErrMealPlanNotFound) {
		t.Fatalf("got %v, want ErrMealPlanNotFound", err)
	}
}

func TestGetAllMealPlansPicksOperationByFilter(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		if !strings.Contains(query, "query MealPlansByClient(") {
			t.Errorf("operation = %s", query)
		}
		fill(t, out, `{"mealPlansList":{"edges":[{"node":{
		  "id":"mp1","name":"Cutting Plan","description":"",
		  "client":{"id":"c1"},"meals":{"edges":[{"node":{"id":"m1","name":"Breakfast","calories":400}}]}
		}}]}}`)
		return nil
	}}
	svc := service.NewMealPlanService(exec)

	plans, err := svc.GetAll(context.Background(), "c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 || len(plans[0].Meals) != 1 || plans[0].Meals[0].Name != "Breakfast" {
		t.Errorf("plans = %+v", plans)
	}
}
