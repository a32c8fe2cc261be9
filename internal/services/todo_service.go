package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apierrors "github.com/aoyagi/todo-list-api/internal/errors"
	"github.com/aoyagi/todo-list-api/internal/models"
	"github.com/aoyagi/todo-list-api/internal/repository"
)

// TodoService handles todo business logic. Every read/write/delete is gated
// by the ownership check in findOwned.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodoInput represents input for creating a todo.
type CreateTodoInput struct {
	Title       string
	Description string
	UserID      uint64
}

// UpdateTodoInput represents a partial update. Title and description are
// applied only when supplied non-empty; Completed is applied whenever the
// pointer is set, including explicit false.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// ListTodos returns the user's todos, newest first. An empty result is not
// an error.
func (s *TodoService) ListTodos(userID uint64) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// GetTodo returns a single todo after the ownership check.
func (s *TodoService) GetTodo(rawID string, userID uint64) (*models.Todo, error) {
	return s.findOwned(rawID, userID)
}

// CreateTodo creates a new todo owned by the caller. Inputs are re-checked
// here so a direct call cannot persist empty fields.
func (s *TodoService) CreateTodo(input CreateTodoInput) (*models.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierrors.ValidationFailed("title: Title is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apierrors.ValidationFailed("description: Description is required")
	}

	todo := &models.Todo{
		Title:       title,
		Description: description,
		Completed:   false,
		UserID:      input.UserID,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update after the ownership check.
func (s *TodoService) UpdateTodo(rawID string, input UpdateTodoInput, userID uint64) (*models.Todo, error) {
	todo, err := s.findOwned(rawID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != "" {
		todo.Title = *input.Title
	}
	if input.Description != nil && *input.Description != "" {
		todo.Description = *input.Description
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo permanently removes a todo after the ownership check. Deleting
// an already-deleted id fails with not-found.
func (s *TodoService) DeleteTodo(rawID string, userID uint64) error {
	todo, err := s.findOwned(rawID, userID)
	if err != nil {
		return err
	}

	if err := s.todoRepo.Delete(todo.ID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

// findOwned is the shared ownership check: existence first, owner match
// second. A malformed id is indistinguishable from a missing one.
func (s *TodoService) findOwned(rawID string, userID uint64) (*models.Todo, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return nil, apierrors.NotFound("Todo not found")
	}

	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Todo not found")
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	if todo.UserID != userID {
		return nil, apierrors.Unauthorized("Not authorized")
	}

	return todo, nil
}
