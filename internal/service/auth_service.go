package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/upstream"
)

var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

type AuthService interface {
	// Login verifies credentials against the upstream user record and issues
	// a signed token.
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Signup(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
}

type authService struct {
	exec          upstream.Executor
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(exec upstream.Executor, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		exec:          exec,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var data upstream.UsersListData
	if err := s.exec.Execute(ctx, upstream.QueryUserForLogin, map[string]any{"email": email}, &data); err != nil {
		return "", nil, err
	}
	nodes := data.UsersList.Nodes()
	if len(nodes) == 0 {
		return "", nil, ErrAuthenticationFailed
	}
	node := nodes[0]

	if !verifyPassword(node.Password, password) {
		return "", nil, ErrAuthenticationFailed
	}

	user := mapUserNode(node)
	token, err := s.generateJWT(&user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, &user, nil
}

// verifyPassword accepts a bcrypt hash, with a constant-time plain-equality
// fallback for records created through the client flow that stores the
// literal default password.
func verifyPassword(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (s *authService) Signup(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	var existing upstream.UsersListData
	if err := s.exec.Execute(ctx, upstream.QueryUserByEmail, map[string]any{"email": email}, &existing); err != nil {
		return nil, err
	}
	if len(existing.UsersList.Edges) > 0 {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	vars := map[string]any{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  string(hashed),
	}
	var created upstream.CreateUserData
	if err := s.exec.Execute(ctx, upstream.MutationCreateUser, vars, &created); err != nil {
		return nil, err
	}
	if err := created.UserCreate.Err(); err != nil {
		return nil, err
	}
	if created.UserCreate.User == nil {
		return nil, errors.New("upstream returned no user for CreateUser")
	}
	user := mapUserNode(*created.UserCreate.User)
	return &user, nil
}

type jwtClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fitstudio-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
