package service

import (
	"context"
	"errors"
	"fmt"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/upstream"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrTrainerNotFound = errors.New("trainer not found")
)

// CreateClientInput is the composite-create payload. Password is optional;
// when absent the configured default placeholder is used.
type CreateClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	TrainerID *string
}

// UpdateClientInput updates the user fields behind a client record.
type UpdateClientInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

type ClientService interface {
	GetAll(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByTrainer(ctx context.Context, trainerID string) ([]domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, input UpdateClientInput) (*domain.Client, error)
	// Delete removes the client record, then best-effort deletes the linked
	// user. A non-empty warning reports a failed user deletion.
	Delete(ctx context.Context, id string) (warning string, err error)
	AssignTrainer(ctx context.Context, clientID, trainerID string) (*domain.Client, error)
	RemoveTrainer(ctx context.Context, clientID string) (*domain.Client, error)
}

type clientService struct {
	exec            upstream.Executor
	defaultPassword string
}

func NewClientService(exec upstream.Executor, defaultPassword string) ClientService {
	return &clientService{exec: exec, defaultPassword: defaultPassword}
}

func (s *clientService) GetAll(ctx context.Context) ([]domain.Client, error) {
	var data upstream.ClientsListData
	if err := s.exec.Execute(ctx, upstream.QueryAllClients, nil, &data); err != nil {
		return nil, err
	}
	return mapClientNodes(data.ClientsList.Nodes()), nil
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var data upstream.ClientData
	if err := s.exec.Execute(ctx, upstream.QueryClientByID, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Client == nil {
		return nil, ErrClientNotFound
	}
	client := mapClientNode(*data.Client)
	return &client, nil
}

func (s *clientService) GetByTrainer(ctx context.Context, trainerID string) ([]domain.Client, error) {
	var data upstream.ClientsListData
	vars := map[string]any{"trainerId": trainerID}
	if err := s.exec.Execute(ctx, upstream.QueryClientsByTrainer, vars, &data); err != nil {
		return nil, err
	}
	return mapClientNodes(data.ClientsList.Nodes()), nil
}

// Create runs the user-then-client composite. When the client-record mutation
// fails, the just-created user is deleted again so no orphaned identity is
// left behind.
func (s *clientService) Create(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	password := input.Password
	if password == "" {
		password = s.defaultPassword
	}

	var created upstream.CreateUserData
	userVars := map[string]any{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
		"password":  password,
	}
	if err := s.exec.Execute(ctx, upstream.MutationCreateUser, userVars, &created); err != nil {
		return nil, err
	}
	if err := created.UserCreate.Err(); err != nil {
		return nil, err
	}
	user := created.UserCreate.User
	if user == nil {
		return nil, errors.New("upstream returned no user for CreateUser")
	}

	var trainerID any // null when the client starts unassigned
	if input.TrainerID != nil && *input.TrainerID != "" {
		trainerID = *input.TrainerID
	}
	clientVars := map[string]any{"userId": user.ID, "trainerId": trainerID}
	var clientCreated upstream.CreateClientData
	err := s.exec.Execute(ctx, upstream.MutationCreateClient, clientVars, &clientCreated)
	if err == nil {
		err = clientCreated.ClientCreate.Err()
	}
	if err != nil {
		s.compensateUser(ctx, user.ID)
		return nil, err
	}
	if clientCreated.ClientCreate.Client == nil {
		s.compensateUser(ctx, user.ID)
		return nil, errors.New("upstream returned no client for CreateClient")
	}

	client := mapClientNode(*clientCreated.ClientCreate.Client)
	// The create payload may omit the nested user; fill from the one we made.
	if client.UserID == "" {
		client.UserID = user.ID
	}
	if client.Name == "" {
		client.Name = mapUserNode(*user).FullName()
	}
	if client.Email == "" {
		client.Email = user.Email
	}
	return &client, nil
}

// compensateUser deletes a user created by a composite that failed halfway.
// Best effort; a failed compensation leaves the primary error untouched.
func (s *clientService) compensateUser(ctx context.Context, userID string) {
	var out upstream.DeleteUserData
	_ = s.exec.Execute(ctx, upstream.MutationDeleteUser, map[string]any{"id": userID}, &out)
}

func (s *clientService) Update(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	vars := map[string]any{
		"id":        input.ID,
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
	}
	var data upstream.UpdateClientData
	if err := s.exec.Execute(ctx, upstream.MutationUpdateClient, vars, &data); err != nil {
		return nil, err
	}
	if err := data.ClientUpdate.Err(); err != nil {
		return nil, err
	}
	if data.ClientUpdate.Client == nil {
		return nil, ErrClientNotFound
	}
	client := mapClientNode(*data.ClientUpdate.Client)
	return &client, nil
}

// Delete cascades: fetch the client to learn its linked userId, delete the
// client record, then delete the user. A failed user deletion is reported as
// a warning, never as the primary result: the client record is already gone.
func (s *clientService) Delete(ctx context.Context, id string) (string, error) {
	var fetched upstream.ClientData
	if err := s.exec.Execute(ctx, upstream.QueryClientByID, map[string]any{"id": id}, &fetched); err != nil {
		return "", err
	}
	if fetched.Client == nil {
		return "", ErrClientNotFound
	}

	var deleted upstream.DeleteClientData
	if err := s.exec.Execute(ctx, upstream.MutationDeleteClient, map[string]any{"id": id}, &deleted); err != nil {
		return "", err
	}
	if err := deleted.ClientDelete.Err(); err != nil {
		return "", err
	}

	userID := ""
	if fetched.Client.User != nil {
		userID = fetched.Client.User.ID
	}
	if userID == "" {
		// No linked user; nothing further to clean up.
		return "", nil
	}

	var userDeleted upstream.DeleteUserData
	err := s.exec.Execute(ctx, upstream.MutationDeleteUser, map[string]any{"id": userID}, &userDeleted)
	if err == nil {
		err = userDeleted.UserDelete.Err()
	}
	if err != nil {
		return fmt.Sprintf("client deleted, but the linked user account could not be removed: %v", err), nil
	}
	return "", nil
}

func (s *clientService) AssignTrainer(ctx context.Context, clientID, trainerID string) (*domain.Client, error) {
	vars := map[string]any{"id": clientID, "trainerId": trainerID}
	var data upstream.UpdateClientData
	if err := s.exec.Execute(ctx, upstream.MutationAssignTrainer, vars, &data); err != nil {
		return nil, err
	}
	if err := data.ClientUpdate.Err(); err != nil {
		return nil, err
	}
	if data.ClientUpdate.Client == nil {
		return nil, ErrClientNotFound
	}
	client := mapClientNode(*data.ClientUpdate.Client)
	return &client, nil
}

func (s *clientService) RemoveTrainer(ctx context.Context, clientID string) (*domain.Client, error) {
	var data upstream.UpdateClientData
	if err := s.exec.Execute(ctx, upstream.MutationRemoveTrainer, map[string]any{"id": clientID}, &data); err != nil {
		return nil, err
	}
	if err := data.ClientUpdate.Err(); err != nil {
		return nil, err
	}
	if data.ClientUpdate.Client == nil {
		return nil, ErrClientNotFound
	}
	client := mapClientNode(*data.ClientUpdate.Client)
	return &client, nil
}
