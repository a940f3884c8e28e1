package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/service"
	"fitstudio/admin-api/internal/upstream"
)

const adminEmail = "admin@fitstudio.app"

const userFixture = `{"usersList":{"edges":[{"node":{"id":"u1","firstName":"Pat","lastName":"Lee","email":"pat@example.com"}}]}}`

const clientByUserFixture = `{"clientsList":{"edges":[{"node":{
  "id":"c1",
  "user":{"id":"u1","firstName":"Pat","lastName":"Lee","email":"pat@example.com"},
  "trainer":{"id":"t9","user":{"id":"u9","firstName":"Sam","lastName":"Coach","email":"sam@example.com"}},
  "workouts":{"edges":[{"node":{"id":"w1"}},{"node":{"id":"w2"}}]},
  "mealPlans":{"edges":[{"node":{"id":"m1"}}]},
  "weightTrends":null
}}]}}`

const trainerByUserFixture = `{"trainersList":{"edges":[{"node":{
  "id":"t1",
  "user":{"id":"u1","firstName":"Pat","lastName":"Lee","email":"pat@example.com"},
  "clients":{"edges":[{"node":{
    "id":"c7",
    "user":{"id":"u7","firstName":"Kim","lastName":"Park","email":"kim@example.com"},
    "trainer":{"id":"t1","user":{"id":"u1","firstName":"Pat","lastName":"Lee","email":"pat@example.com"}},
    "workouts":{"edges":[{"node":{"id":"w3"}}]},
    "mealPlans":null,
    "weightTrends":null
  }}]}
}}]}}`

func TestGetProfileByEmailAdminShortcut(t *testing.T) {
	exec := &mockExec{}
	svc := service.NewTrainerService(exec, adminEmail)

	// Case-insensitive match, and no upstream calls at all.
	profile, err := svc.GetProfileByEmail(context.Background(), "Admin@FitStudio.App")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Kind != domain.RoleAdmin {
		t.Errorf("kind = %q, want admin", profile.Kind)
	}
	if profile.Clients == nil || len(profile.Clients) != 0 {
		t.Errorf("admin clients must be an empty list, got %v", profile.Clients)
	}
	if exec.callCount() != 0 {
		t.Errorf("admin shortcut made %d upstream calls, want 0", exec.callCount())
	}
}

func TestGetProfileByEmailUserNotFound(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, `{"usersList":{"edges":[]}}`)
		return nil
	}}
	svc := service.NewTrainerService(exec, adminEmail)

	_, err := svc.GetProfileByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
	if exec.callCount() != 1 {
		t.Errorf("made %d calls, want 1", exec.callCount())
	}
}

// A user linked to both a client and a trainer record resolves as a client:
// the client lookup runs first and short-circuits.
func TestGetProfileByEmailClientPrecedence(t *testing.T) {
	exec := &mockExec{}
	exec.respond = func(query string, vars map[string]any, out any) error {
		switch {
		case strings.Contains(query, "query UserByEmail("):
			fill(t, out, userFixture)
		case strings.Contains(query, "query ClientByUserID("):
			fill(t, out, clientByUserFixture)
		case strings.Contains(query, "query TrainerByUserID("):
			// Both tables are populated for this user.
			fill(t, out, trainerByUserFixture)
		default:
			t.Fatalf("unexpected operation: %s", query)
		}
		return nil
	}
	svc := service.NewTrainerService(exec, adminEmail)

	profile, err := svc.GetProfileByEmail(context.Background(), "pat@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Kind != domain.RoleClient {
		t.Fatalf("kind = %q, want client (client lookup must precede trainer lookup)", profile.Kind)
	}
	if exec.callCount() != 2 {
		t.Errorf("made %d calls, want 2 (trainer lookup must be skipped)", exec.callCount())
	}
	if profile.WorkoutCount != 2 || profile.MealPlanCount != 1 || profile.WeightTrendCount != 0 {
		t.Errorf("counts = %d/%d/%d", profile.WorkoutCount, profile.MealPlanCount, profile.WeightTrendCount)
	}
	if profile.TrainerName != "Sam Coach" {
		t.Errorf("trainerName = %q", profile.TrainerName)
	}
	if len(profile.Clients) != 0 {
		t.Errorf("a client manages no one, got %v", profile.Clients)
	}
}

func TestGetProfileByEmailTrainerView(t *testing.T) {
	exec := &mockExec{}
	exec.respond = func(query string, vars map[string]any, out any) error {
		switch {
		case strings.Contains(query, "query UserByEmail("):
			fill(t, out, userFixture)
		case strings.Contains(query, "query ClientByUserID("):
			fill(t, out, `{"clientsList":{"edges":[]}}`)
		case strings.Contains(query, "query TrainerByUserID("):
			fill(t, out, trainerByUserFixture)
		default:
			t.Fatalf("unexpected operation: %s", query)
		}
		return nil
	}
	svc := service.NewTrainerService(exec, adminEmail)

	profile, err := svc.GetProfileByEmail(context.Background(), "pat@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Kind != domain.RoleTrainer {
		t.Fatalf("kind = %q, want trainer", profile.Kind)
	}
	if profile.ClientCount != 1 || len(profile.Clients) != 1 {
		t.Fatalf("roster = count %d, %d clients", profile.ClientCount, len(profile.Clients))
	}
	roster := profile.Clients[0]
	if roster.Name != "Kim Park" || roster.WorkoutCount != 1 || roster.MealPlanCount != 0 {
		t.Errorf("rolled-up client = %+v", roster)
	}
}

func TestGetProfileByEmailNoProfile(t *testing.T) {
	exec := &mockExec{}
	exec.respond = func(query string, vars map[string]any, out any) error {
		switch {
		case strings.Contains(query, "query UserByEmail("):
			fill(t, out, userFixture)
		default:
			fill(t, out, `{"clientsList":{"edges":[]},"trainersList":{"edges":[]}}`)
		}
		return nil
	}
	svc := service.NewTrainerService(exec, adminEmail)

	_, err := svc.GetProfileByEmail(context.Background(), "pat@example.com")
	if !errors.Is(err, service.ErrNoProfileFound) {
		t.Fatalf("got %v, want ErrNoProfileFound", err)
	}
	if exec.callCount() != 3 {
		t.Errorf("made %d calls, want 3 (user, client, trainer)", exec.callCount())
	}
}

func TestTrainerDeleteWarnsOnUserDeleteFailure(t *testing.T) {
	exec := &mockExec{}
	exec.respond = func(query string, vars map[string]any, out any) error {
		switch {
		case strings.Contains(query, "query TrainerByID("):
			fill(t, out, `{"trainer":{"id":"t1","user":{"id":"u1","firstName":"Pat","lastName":"Lee","email":"pat@example.com"}}}`)
		case strings.Contains(query, "mutation DeleteTrainer("):
			fill(t, out, `{"trainerDelete":{"success":true}}`)
		case strings.Contains(query, "mutation DeleteUser("):
			fill(t, out, `{"userDelete":{"success":false,"errors":[{"message":"user is referenced elsewhere"}]}}`)
		default:
			t.Fatalf("unexpected operation: %s", query)
		}
		return nil
	}
	svc := service.NewTrainerService(exec, adminEmail)

	warning, err := svc.Delete(context.Background(), "t1")
	if err != nil {
		t.Fatalf("secondary failure must not fail the delete: %v", err)
	}
	if warning == "" || !strings.Contains(warning, "user is referenced elsewhere") {
		t.Errorf("warning = %q", warning)
	}
}

func TestTrainerGetByIDNotFound(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, `{"trainer":null}`)
		return nil
	}}
	svc := service.NewTrainerService(exec, adminEmail)

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, service.ErrTrainerNotFound) {
		t.Fatalf("got %v, want ErrTrainerNotFound", err)
	}
}

func TestTrainerGetAllPropagatesTransportError(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		return &upstream.TransportError{Errors: []upstream.ResponseError{{Message: "boom"}}}
	}}
	svc := service.NewTrainerService(exec, adminEmail)

	_, err := svc.GetAll(context.Background())
	var transportErr *upstream.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("got %T, want *TransportError", err)
	}
}
