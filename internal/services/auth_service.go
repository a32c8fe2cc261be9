package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apierrors "github.com/aoyagi/todo-list-api/internal/errors"
	"github.com/aoyagi/todo-list-api/internal/models"
	"github.com/aoyagi/todo-list-api/internal/repository"
	"github.com/aoyagi/todo-list-api/internal/token"
)

// AuthService handles registration, login and current-user lookup.
type AuthService struct {
	userRepo          repository.UserRepository
	tokens            *token.Maker
	minPasswordLength int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Maker, minPasswordLength int) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		tokens:            tokens,
		minPasswordLength: minPasswordLength,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// SessionResult is a freshly minted token plus the authenticated user.
type SessionResult struct {
	Token string
	User  *models.User
}

// Register creates a new user and mints a session token for it.
func (s *AuthService) Register(input RegisterInput) (*SessionResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apierrors.ValidationFailed("name: Name is required")
	}
	if len(input.Password) < s.minPasswordLength {
		return nil, apierrors.ValidationFailed(fmt.Sprintf("password: Password must be at least %d characters", s.minPasswordLength))
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, apierrors.Conflict("User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent registrations can both pass the lookup above; the
		// unique constraint decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Conflict("User already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.newSession(user)
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password are deliberately indistinguishable.
func (s *AuthService) Login(input LoginInput) (*SessionResult, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.InvalidCredentials("Invalid credentials")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apierrors.InvalidCredentials("Invalid credentials")
	}

	return s.newSession(user)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) newSession(user *models.User) (*SessionResult, error) {
	tok, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &SessionResult{Token: tok, User: user}, nil
}
