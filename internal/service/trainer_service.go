package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/upstream"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNoProfileFound = errors.New("no client or trainer profile exists for this user")
)

// UpdateTrainerInput updates the user fields behind a trainer record.
type UpdateTrainerInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

type TrainerService interface {
	GetAll(ctx context.Context) ([]domain.Trainer, error)
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	// GetProfileByEmail resolves who a user is: admin, client or trainer.
	GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Update(ctx context.Context, input UpdateTrainerInput) (*domain.Trainer, error)
	// Delete removes the trainer record, then best-effort deletes the linked
	// user. A non-empty warning reports a failed user deletion.
	Delete(ctx context.Context, id string) (warning string, err error)
}

type trainerService struct {
	exec       upstream.Executor
	adminEmail string
}

func NewTrainerService(exec upstream.Executor, adminEmail string) TrainerService {
	return &trainerService{exec: exec, adminEmail: adminEmail}
}

func (s *trainerService) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	var data upstream.TrainersListData
	if err := s.exec.Execute(ctx, upstream.QueryAllTrainers, nil, &data); err != nil {
		return nil, err
	}
	return mapTrainerNodes(data.TrainersList.Nodes()), nil
}

func (s *trainerService) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	var data upstream.TrainerData
	if err := s.exec.Execute(ctx, upstream.QueryTrainerByID, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Trainer == nil {
		return nil, ErrTrainerNotFound
	}
	trainer := mapTrainerNode(*data.Trainer)
	return &trainer, nil
}

// GetProfileByEmail resolves an email to one of three tagged payloads.
//
// The order is load-bearing: the client lookup runs before the trainer
// lookup, so a user linked to both records always resolves as a client.
func (s *trainerService) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if strings.EqualFold(email, s.adminEmail) {
		return &domain.Profile{
			Kind:    domain.RoleAdmin,
			Name:    "Administrator",
			Email:   s.adminEmail,
			Clients: []domain.Client{},
		}, nil
	}

	var users upstream.UsersListData
	if err := s.exec.Execute(ctx, upstream.QueryUserByEmail, map[string]any{"email": email}, &users); err != nil {
		return nil, err
	}
	userNodes := users.UsersList.Nodes()
	if len(userNodes) == 0 {
		return nil, ErrUserNotFound
	}
	user := userNodes[0]

	var clients upstream.ClientsListData
	if err := s.exec.Execute(ctx, upstream.QueryClientByUserID, map[string]any{"userId": user.ID}, &clients); err != nil {
		return nil, err
	}
	if nodes := clients.ClientsList.Nodes(); len(nodes) > 0 {
		client := mapClientNode(nodes[0])
		return &domain.Profile{
			Kind:             domain.RoleClient,
			ID:               client.ID,
			UserID:           user.ID,
			Name:             client.Name,
			Email:            client.Email,
			TrainerID:        client.TrainerID,
			TrainerName:      client.TrainerName,
			WorkoutCount:     client.WorkoutCount,
			MealPlanCount:    client.MealPlanCount,
			WeightTrendCount: client.WeightTrendCount,
			Clients:          []domain.Client{},
		}, nil
	}

	var trainers upstream.TrainersListData
	if err := s.exec.Execute(ctx, upstream.QueryTrainerByUserID, map[string]any{"userId": user.ID}, &trainers); err != nil {
		return nil, err
	}
	if nodes := trainers.TrainersList.Nodes(); len(nodes) > 0 {
		trainer := mapTrainerNode(nodes[0])
		return &domain.Profile{
			Kind:        domain.RoleTrainer,
			ID:          trainer.ID,
			UserID:      user.ID,
			Name:        trainer.Name,
			Email:       trainer.Email,
			ClientCount: trainer.ClientCount,
			Clients:     trainer.Clients,
		}, nil
	}

	return nil, ErrNoProfileFound
}

func (s *trainerService) Update(ctx context.Context, input UpdateTrainerInput) (*domain.Trainer, error) {
	vars := map[string]any{
		"id":        input.ID,
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
	}
	var data upstream.UpdateTrainerData
	if err := s.exec.Execute(ctx, upstream.MutationUpdateTrainer, vars, &data); err != nil {
		return nil, err
	}
	if err := data.TrainerUpdate.Err(); err != nil {
		return nil, err
	}
	if data.TrainerUpdate.Trainer == nil {
		return nil, ErrTrainerNotFound
	}
	trainer := mapTrainerNode(*data.TrainerUpdate.Trainer)
	return &trainer, nil
}

// Delete mirrors the client delete cascade for trainers.
func (s *trainerService) Delete(ctx context.Context, id string) (string, error) {
	var fetched upstream.TrainerData
	if err := s.exec.Execute(ctx, upstream.QueryTrainerByID, map[string]any{"id": id}, &fetched); err != nil {
		return "", err
	}
	if fetched.Trainer == nil {
		return "", ErrTrainerNotFound
	}

	var deleted upstream.DeleteTrainerData
	if err := s.exec.Execute(ctx, upstream.MutationDeleteTrainer, map[string]any{"id": id}, &deleted); err != nil {
		return "", err
	}
	if err := deleted.TrainerDelete.Err(); err != nil {
		return "", err
	}

	userID := ""
	if fetched.Trainer.User != nil {
		userID = fetched.Trainer.User.ID
	}
	if userID == "" {
		return "", nil
	}

	var userDeleted upstream.DeleteUserData
	err := s.exec.Execute(ctx, upstream.MutationDeleteUser, map[string]any{"id": userID}, &userDeleted)
	if err == nil {
		err = userDeleted.UserDelete.Err()
	}
	if err != nil {
		return fmt.Sprintf("trainer deleted, but the linked user account could not be removed: %v", err), nil
	}
	return "", nil
}
