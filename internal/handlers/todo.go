package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/aoyagi/todo-list-api/internal/errors"
	"github.com/aoyagi/todo-list-api/internal/middleware"
	"github.com/aoyagi/todo-list-api/internal/response"
	"github.com/aoyagi/todo-list-api/internal/services"
)

// TodoHandler coordinates todo CRUD HTTP handlers. All routes sit behind
// RequireAuth; the resolved user's id is passed explicitly into the service.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// List returns all todos owned by the current user, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apierrors.Unauthenticated("Not authorized, no token"))
		return
	}

	todos, err := h.todoService.ListTodos(user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Todos retrieved successfully", todos)
}

// Get returns a single todo by id.
func (h *TodoHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apierrors.Unauthenticated("Not authorized, no token"))
		return
	}

	todo, err := h.todoService.GetTodo(c.Param("id"), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Todo retrieved successfully", todo)
}

// Create adds a new todo owned by the current user.
func (h *TodoHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apierrors.Unauthenticated("Not authorized, no token"))
		return
	}

	type CreateTodoRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	todo, err := h.todoService.CreateTodo(services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      user.ID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Todo created successfully", todo)
}

// Update applies a partial update to a todo.
func (h *TodoHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apierrors.Unauthenticated("Not authorized, no token"))
		return
	}

	type UpdateTodoRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Param("id"), services.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}, user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Todo updated successfully", todo)
}

// Delete permanently removes a todo.
func (h *TodoHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apierrors.Unauthenticated("Not authorized, no token"))
		return
	}

	if err := h.todoService.DeleteTodo(c.Param("id"), user.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Todo removed successfully", nil)
}
