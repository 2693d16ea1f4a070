package services

import (
	"errors"
	"fmt"

	"github.com/taskstack/user-task-api/internal/auth"
	"github.com/taskstack/user-task-api/internal/models"
	"github.com/taskstack/user-task-api/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when a signup email already has an account.
	// The check is a lookup before the insert, not a uniqueness constraint,
	// so two concurrent signups with the same email can both pass it.
	ErrEmailTaken = errors.New("user already exists")

	// ErrUserNotExist is returned by login for an unknown email. The
	// original API distinguishes this from a wrong password.
	ErrUserNotExist = errors.New("user does not exist")

	// ErrInvalidPassword is returned by login when the hash does not match.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound is returned by the id-based user operations.
	ErrUserNotFound = errors.New("user not found")

	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles account business logic.
type UserService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Signup creates a new user with a hashed password. The email conflict
// check happens before the insert.
func (s *UserService) Signup(input SignupInput) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
// No session or token is issued; callers receive the profile only.
func (s *UserService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotExist
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.Password) {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// GetUser retrieves a user by ID, password excluded.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user, password excluded.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUserInput holds the full replacement record for an update.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateUser hashes the new password and overwrites the whole record.
func (s *UserService) UpdateUser(id string, input UpdateUserInput) error {
	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return ErrFailedToHashPassword
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
	}

	rows, err := s.userRepo.ReplaceByID(id, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user and returns the removed record.
func (s *UserService) DeleteUser(id string) (*models.User, error) {
	user, err := s.userRepo.DeleteByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}
