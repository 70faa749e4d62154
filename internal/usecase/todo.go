package usecase

import (
	"context"

	"github.com/tiago154/fast-zero/internal/auth"
	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/repository"
)

type TodoUsecase struct {
	todos repository.TodoRepository
}

func NewTodoUsecase(todos repository.TodoRepository) *TodoUsecase {
	return &TodoUsecase{todos: todos}
}

type CreateTodoInput struct {
	Title       string
	Description string
	State       domain.TodoState
}

func (u *TodoUsecase) Create(ctx context.Context, principal *domain.User, input CreateTodoInput) (*domain.Todo, error) {
	state := input.State
	if state == "" {
		state = domain.StateDraft
	}
	return u.todos.Create(ctx, &domain.Todo{
		UserID:      principal.ID,
		Title:       input.Title,
		Description: input.Description,
		State:       state,
	})
}

type ListTodosInput struct {
	Title       string
	Description string
	State       domain.TodoState
	Limit       int
	Offset      int
}

// List returns the principal's own todos; the query is ownership-scoped, so
// other users' items are never visible.
func (u *TodoUsecase) List(ctx context.Context, principal *domain.User, input ListTodosInput) ([]*domain.Todo, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	return u.todos.List(ctx, repository.ListTodosInput{
		UserID:      principal.ID,
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
		Limit:       limit,
		Offset:      offset,
	})
}

type UpdateTodoInput struct {
	Title       *string
	Description *string
	State       *domain.TodoState
}

// Update partially updates one of the principal's todos. A todo owned by
// someone else yields ErrForbidden, distinct from ErrTodoNotFound.
func (u *TodoUsecase) Update(ctx context.Context, principal *domain.User, id int64, input UpdateTodoInput) (*domain.Todo, error) {
	todo, err := u.authorize(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.State != nil {
		todo.State = *input.State
	}

	return u.todos.Update(ctx, todo)
}

func (u *TodoUsecase) Delete(ctx context.Context, principal *domain.User, id int64) error {
	if _, err := u.authorize(ctx, principal, id); err != nil {
		return err
	}
	return u.todos.Delete(ctx, id)
}

func (u *TodoUsecase) authorize(ctx context.Context, principal *domain.User, id int64) (*domain.Todo, error) {
	todo, err := u.todos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccessTodo(principal, todo) {
		return nil, domain.ErrForbidden
	}
	return todo, nil
}
