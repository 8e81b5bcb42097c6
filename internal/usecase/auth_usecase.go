package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidAuthInput   = errors.New("invalid auth input")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// AuthClaims are the JWT claims carried by API tokens.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput is a self-service signup.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entities.Role // optional, defaults to user
}

// AuthResult pairs the account with a signed bearer token.
type AuthResult struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/mock_auth_usecase.go -package=mocks
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Me(ctx context.Context, userID string) (entities.User, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	secret   []byte
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, secret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || !strings.Contains(in.Email, "@") {
		return AuthResult{}, ErrInvalidAuthInput
	}
	if len(in.Password) < 8 {
		return AuthResult{}, ErrWeakPassword
	}
	role := in.Role
	if role == "" {
		role = entities.RoleUser
	}
	if !entities.ValidRole(role) {
		return AuthResult{}, ErrInvalidAuthInput
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return AuthResult{}, err
	}
	if existing.ID != "" {
		return AuthResult{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	user, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := u.signToken(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.Active {
		return AuthResult{}, ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := u.signToken(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) signToken(user entities.User) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}
