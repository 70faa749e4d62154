package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/transport/http/middleware"
	"github.com/tiago154/fast-zero/internal/usecase"
)

type todoUsecaser interface {
	Create(ctx context.Context, principal *domain.User, input usecase.CreateTodoInput) (*domain.Todo, error)
	List(ctx context.Context, principal *domain.User, input usecase.ListTodosInput) ([]*domain.Todo, error)
	Update(ctx context.Context, principal *domain.User, id int64, input usecase.UpdateTodoInput) (*domain.Todo, error)
	Delete(ctx context.Context, principal *domain.User, id int64) error
}

type TodoHandler struct {
	todoUsecase todoUsecaser
	logger      *slog.Logger
}

func NewTodoHandler(todoUsecase todoUsecaser, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
		logger:      logger.With("component", "todo_handler"),
	}
}

type createTodoRequest struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	State       string `json:"state"       binding:"omitempty,oneof=draft todo doing done trash"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	State       *string `json:"state" binding:"omitempty,oneof=draft todo doing done trash"`
}

type todoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		State:       string(t.State),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// POST /api/todos
func (h *TodoHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return
	}

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.Create(c.Request.Context(), principal, usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		State:       domain.TodoState(req.State),
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create todo", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// GET /api/todos
func (h *TodoHandler) List(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return
	}

	state := domain.TodoState(c.Query("state"))
	if state != "" && !state.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state filter"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	todos, err := h.todoUsecase.List(c.Request.Context(), principal, usecase.ListTodosInput{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		State:       state,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list todos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"todos": out})
}

// PATCH /api/todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errTodoNotFound})
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.State != nil {
		state := domain.TodoState(*req.State)
		input.State = &state
	}

	todo, err := h.todoUsecase.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		h.respondTodoError(c, id, err, "update todo")
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(todo))
}

// DELETE /api/todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errTodoNotFound})
		return
	}

	if err := h.todoUsecase.Delete(c.Request.Context(), principal, id); err != nil {
		h.respondTodoError(c, id, err, "delete todo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task has been deleted successfully"})
}

func (h *TodoHandler) respondTodoError(c *gin.Context, id int64, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errTodoNotFound})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": errNotEnoughPermission})
	default:
		h.logger.ErrorContext(c.Request.Context(), op, "todo_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}
