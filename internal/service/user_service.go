package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10

	tokenIssuer   = "catalog-api"
	tokenAudience = "catalog-frontend"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("username or email is already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService defines the interface for account business logic
type UserService interface {
	Register(ctx context.Context, username, email, password, firstName, lastName string) (*domain.User, string, error)
	Login(ctx context.Context, login, password string) (*domain.User, string, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName, avatarURL string) (*domain.User, error)
	ListUsers(ctx context.Context) []domain.User
}

// Claims represents the JWT claims
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	store       *repository.Store
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewUserService creates a new instance of UserService
func NewUserService(store *repository.Store, jwtSecret string, tokenExpiry time.Duration) UserService {
	if tokenExpiry <= 0 {
		tokenExpiry = 24 * time.Hour
	}
	return &userService{
		store:       store,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a new account with a hashed password and returns the
// stored user together with a fresh access token.
func (s *userService) Register(ctx context.Context, username, email, password, firstName, lastName string) (*domain.User, string, error) {
	if s.store.UserExists(username, email) {
		return nil, "", ErrUserAlreadyExists
	}

	hashed, err := s.hashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	res := s.store.InsertUser(username, email, hashed, firstName, lastName)
	user := s.store.UserByID(res.NewID)
	if user == nil {
		return nil, "", fmt.Errorf("failed to read back user %d", res.NewID)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates by username or email and returns a JWT token.
func (s *userService) Login(ctx context.Context, login, password string) (*domain.User, string, error) {
	user := s.store.UserByLogin(login)
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.verifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Last-login marker; the miss case cannot happen for a user we just read
	s.store.TouchUser(user.ID)

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Profile retrieves fresh account data by id.
func (s *userService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user := s.store.UserByID(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile sets the mutable profile fields and returns the updated user.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, avatarURL string) (*domain.User, error) {
	if res := s.store.UpdateUserProfile(userID, firstName, lastName, avatarURL); res.Changes == 0 {
		return nil, ErrUserNotFound
	}
	return s.Profile(ctx, userID)
}

// ListUsers returns all accounts, newest first.
func (s *userService) ListUsers(ctx context.Context) []domain.User {
	return s.store.Users()
}

func (s *userService) hashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *userService) verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// generateToken signs an HS256 access token with user id, username, email
// and role claims.
func (s *userService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
