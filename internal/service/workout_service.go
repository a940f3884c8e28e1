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

var ErrWorkoutNotFound = errors.New("workout not found")

// CreateWorkoutInput creates one workout for one client.
type CreateWorkoutInput struct {
	Name      string
	Exercises domain.ExerciseList
	ClientID  string
	TrainerID string
	DueDate   string
}

// UpdateWorkoutInput carries the updatable workout fields. Pointers
// distinguish "leave unchanged" from explicit zero values.
type UpdateWorkoutInput struct {
	ID        string
	Name      *string
	Exercises domain.ExerciseList
	Completed *bool
	DueDate   *string
}

// AssignmentResult aggregates a multi-client workout creation: every
// per-client outcome is accounted for, succeeded or failed.
type AssignmentResult struct {
	Created  int              `json:"created"`
	Failed   int              `json:"failed"`
	Workouts []domain.Workout `json:"workouts"`
	Errors   []string         `json:"errors,omitempty"`
}

type WorkoutService interface {
	// GetAll lists workouts, optionally filtered to one client.
	GetAll(ctx context.Context, clientID string) ([]domain.Workout, error)
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	Create(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error)
	// CreateForClients assigns the same workout to several clients
	// concurrently and reports per-client successes and failures.
	CreateForClients(ctx context.Context, input CreateWorkoutInput, clientIDs []string) (*AssignmentResult, error)
	Update(ctx context.Context, input UpdateWorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

type workoutService struct {
	exec upstream.Executor
}

func NewWorkoutService(exec upstream.Executor) WorkoutService {
	return &workoutService{exec: exec}
}

func (s *workoutService) GetAll(ctx context.Context, clientID string) ([]domain.Workout, error) {
	var data upstream.WorkoutsListData
	var err error
	if clientID == "" {
		err = s.exec.Execute(ctx, upstream.QueryAllWorkouts, nil, &data)
	} else {
		err = s.exec.Execute(ctx, upstream.QueryWorkoutsByClient, map[string]any{"clientId": clientID}, &data)
	}
	if err != nil {
		return nil, err
	}
	return mapWorkoutNodes(data.WorkoutsList.Nodes()), nil
}

func (s *workoutService) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var data upstream.WorkoutData
	if err := s.exec.Execute(ctx, upstream.QueryWorkoutByID, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Workout == nil {
		return nil, ErrWorkoutNotFound
	}
	workout := mapWorkoutNode(*data.Workout)
	return &workout, nil
}

func (s *workoutService) Create(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error) {
	serialized, err := input.Exercises.Serialized()
	if err != nil {
		return nil, err
	}
	var trainerID any
	if input.TrainerID != "" {
		trainerID = input.TrainerID
	}
	var dueDate any
	if input.DueDate != "" {
		dueDate = input.DueDate
	}
	vars := map[string]any{
		"name":      input.Name,
		"exercises": serialized,
		"clientId":  input.ClientID,
		"trainerId": trainerID,
		"dueDate":   dueDate,
	}
	var data upstream.CreateWorkoutData
	if err := s.exec.Execute(ctx, upstream.MutationCreateWorkout, vars, &data); err != nil {
		return nil, err
	}
	if err := data.WorkoutCreate.Err(); err != nil {
		return nil, err
	}
	if data.WorkoutCreate.Workout == nil {
		return nil, errors.New("upstream returned no workout for CreateWorkout")
	}
	workout := mapWorkoutNode(*data.WorkoutCreate.Workout)
	return &workout, nil
}

// CreateForClients fans out one create mutation per client and waits for all
// of them. Every failure is collected so the response reflects exactly what
// was persisted.
func (s *workoutService) CreateForClients(ctx context.Context, input CreateWorkoutInput, clientIDs []string) (*AssignmentResult, error) {
	result := &AssignmentResult{Workouts: []domain.Workout{}}
	if len(clientIDs) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(4)
	for _, clientID := range clientIDs {
		perClient := input
		perClient.ClientID = clientID
		g.Go(func() error {
			workout, err := s.Create(ctx, perClient)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("client %s: %v", perClient.ClientID, err))
				return nil
			}
			result.Created++
			result.Workouts = append(result.Workouts, *workout)
			return nil
		})
	}
	_ = g.Wait() // closures never return errors; failures live in result
	return result, nil
}

func (s *workoutService) Update(ctx context.Context, input UpdateWorkoutInput) (*domain.Workout, error) {
	vars := map[string]any{"id": input.ID}
	if input.Name != nil {
		vars["name"] = *input.Name
	}
	if input.Exercises != nil {
		serialized, err := input.Exercises.Serialized()
		if err != nil {
			return nil, err
		}
		vars["exercises"] = serialized
	}
	if input.Completed != nil {
		vars["completed"] = *input.Completed
	}
	if input.DueDate != nil {
		vars["dueDate"] = *input.DueDate
	}

	var data upstream.UpdateWorkoutData
	if err := s.exec.Execute(ctx, upstream.MutationUpdateWorkout, vars, &data); err != nil {
		return nil, err
	}
	if err := data.WorkoutUpdate.Err(); err != nil {
		return nil, err
	}
	if data.WorkoutUpdate.Workout == nil {
		return nil, ErrWorkoutNotFound
	}
	workout := mapWorkoutNode(*data.WorkoutUpdate.Workout)
	return &workout, nil
}

func (s *workoutService) Delete(ctx context.Context, id string) error {
	var data upstream.DeleteWorkoutData
	if err := s.exec.Execute(ctx, upstream.MutationDeleteWorkout, map[string]any{"id": id}, &data); err != nil {
		return err
	}
	return data.WorkoutDelete.Err()
}
