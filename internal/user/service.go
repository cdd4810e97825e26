package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLength = 150
	minPasswordLength = 8
	bcryptCost        = 12
)

var (
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrInvalidUsername = fmt.Errorf("username is required and must be at most %d characters", maxUsernameLength)
	ErrWeakPassword    = fmt.Errorf("password must be at least %d characters", minPasswordLength)
)

// User is owned by the identity side of the system; the food API only reads it
// to resolve the caller and to embed the owner in pantry and cart rows.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, username, email, password string, staff bool) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if email == "" {
		return nil
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrUserNotFound
	}
	return s.repo.getUserByID(ctx, userID)
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.getUserByUsername(ctx, strings.TrimSpace(username))
}

func (s *service) CreateUser(ctx context.Context, username, email, password string, staff bool) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || len(username) > maxUsernameLength {
		return nil, ErrInvalidUsername
	}
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsStaff:      staff,
		IsActive:     true,
	}
	if err := s.repo.createUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
