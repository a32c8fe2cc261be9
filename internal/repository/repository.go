package repository

import (
	"github.com/aoyagi/todo-list-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user; the store enforces email uniqueness
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (case-sensitive match)
	FindByEmail(email string) (*models.User, error)
}

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *models.Todo) error

	// FindByID finds a todo by ID
	FindByID(id uint64) (*models.Todo, error)

	// ListByUserID lists a user's todos, newest first
	ListByUserID(userID uint64) ([]models.Todo, error)

	// Update updates a todo
	Update(todo *models.Todo) error

	// Delete permanently removes a todo
	Delete(id uint64) error
}
