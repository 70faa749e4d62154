package repository

import (
	"context"
	"time"

	"github.com/tiago154/fast-zero/internal/domain"
)

// ListTodosInput filters a user's todos. Title and Description are substring
// matches; State is an exact match when non-empty.
type ListTodosInput struct {
	UserID      int64
	Title       string
	Description string
	State       domain.TodoState
	Limit       int
	Offset      int
}

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	List(ctx context.Context, input ListTodosInput) ([]*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
	// PurgeTrashed deletes trashed todos last updated before cutoff and
	// returns how many rows were removed.
	PurgeTrashed(ctx context.Context, cutoff time.Time) (int, error)
}
