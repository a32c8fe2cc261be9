package repository

import (
	"github.com/aoyagi/todo-list-api/internal/models"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a new todo
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// FindByID finds a todo by ID
func (r *GormTodoRepository) FindByID(id uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListByUserID lists a user's todos, newest first
func (r *GormTodoRepository) ListByUserID(userID uint64) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// Update updates a todo
func (r *GormTodoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// Delete permanently removes a todo
func (r *GormTodoRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Todo{}, id).Error
}
