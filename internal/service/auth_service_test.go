package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"fitstudio/admin-api/internal/service"
)

const jwtSecret = "test-secret"

func loginFixture(t *testing.T, storedPassword string) string {
	t.Helper()
	return fmt.Sprintf(`{"usersList":{"edges":[{"node":{
	  "id":"u1","firstName":"Pat","lastName":"Lee","email":"pat@example.com","password":%q
	}}]}}`, storedPassword)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		if !strings.Contains(query, "query UserForLogin(") {
			t.Fatalf("unexpected operation: %s", query)
		}
		fill(t, out, loginFixture(t, string(hash)))
		return nil
	}}
	svc := service.NewAuthService(exec, jwtSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "pat@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "pat@example.com" {
		t.Errorf("user = %+v", user)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["uid"] != "u1" || claims["iss"] != "fitstudio-admin" {
		t.Errorf("claims = %v", parsed.Claims)
	}
}

// Records created through the client flow store the literal default password,
// not a hash. Login still accepts them.
func TestLoginWithPlainStoredPassword(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, loginFixture(t, "defaultPassword123"))
		return nil
	}}
	svc := service.NewAuthService(exec, jwtSecret, time.Hour)

	if _, _, err := svc.Login(context.Background(), "pat@example.com", "defaultPassword123"); err != nil {
		t.Fatal(err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	tests := []struct {
		name    string
		fixture string
	}{
		{"wrong password", `{"usersList":{"edges":[{"node":{"id":"u1","email":"pat@example.com","password":"` + string(hash) + `"}}]}}`},
		{"unknown email", `{"usersList":{"edges":[]}}`},
		{"empty stored password", `{"usersList":{"edges":[{"node":{"id":"u1","email":"pat@example.com","password":""}}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
				fill(t, out, tt.fixture)
				return nil
			}}
			svc := service.NewAuthService(exec, jwtSecret, time.Hour)

			_, _, err := svc.Login(context.Background(), "pat@example.com", "not-hunter2")
			if !errors.Is(err, service.ErrAuthenticationFailed) {
				t.Fatalf("got %v, want ErrAuthenticationFailed", err)
			}
		})
	}
}

func TestSignupRejectsExistingEmail(t *testing.T) {
	exec := &mockExec{respond: func(query string, vars map[string]any, out any) error {
		fill(t, out, `{"usersList":{"edges":[{"node":{"id":"u1","email":"pat@example.com"}}]}}`)
		return nil
	}}
	svc := service.NewAuthService(exec, jwtSecret, time.Hour)

	_, err := svc.Signup(context.Background(), "Pat", "Lee", "pat@example.com", "hunter2")
	if !errors.Is(err, service.ErrUserAlreadyExists) {
		t.Fatalf("got %v, want ErrUserAlreadyExists", err)
	}
	if exec.callCount() != 1 {
		t.Errorf("made %d calls, want 1", exec.callCount())
	}
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	exec := &mockExec{}
	exec.respond = func(query string, vars map[string]any, out any) error {
		switch {
		case strings.Contains(query, "query UserByEmail("):
			fill(t, out, `{"usersList":{"edges":[]}}`)
		case strings.Contains(query, "mutation CreateUser("):
			stored, _ := vars["password"].(string)
			if stored == "hunter2" {
				t.Error("plaintext password sent upstream")
			}
			if bcrypt.CompareHashAndPassword([]byte(stored), []byte("hunter2")) != nil {
				t.Errorf("stored password %q is not a bcrypt hash of the input", stored)
			}
			fill(t, out, `{"userCreate":{"success":true,"user":{"id":"u2","firstName":"Pat","lastName":"Lee","email":"pat@example.com"}}}`)
		default:
			t.Fatalf("unexpected operation: %s", query)
		}
		return nil
	}
	svc := service.NewAuthService(exec, jwtSecret, time.Hour)

	user, err := svc.Signup(context.Background(), "Pat", "Lee", "pat@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != "u2" {
		t.Errorf("user = %+v", user)
	}
}
