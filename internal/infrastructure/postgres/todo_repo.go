package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/repository"
)

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	query := `
		INSERT INTO todos (user_id, title, description, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, state, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, todo.UserID, todo.Title, todo.Description, todo.State)
	return scanTodo(row)
}

func (r *TodoRepository) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	query := `
		SELECT id, user_id, title, description, state, created_at, updated_at
		FROM todos WHERE id = $1`

	return scanTodo(r.pool.QueryRow(ctx, query, id))
}

func (r *TodoRepository) List(ctx context.Context, input repository.ListTodosInput) ([]*domain.Todo, error) {
	args := []any{input.UserID}
	where := []string{"user_id = $1"}

	if input.Title != "" {
		args = append(args, "%"+input.Title+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if input.Description != "" {
		args = append(args, "%"+input.Description+"%")
		where = append(where, fmt.Sprintf("description ILIKE $%d", len(args)))
	}
	if input.State != "" {
		args = append(args, input.State)
		where = append(where, fmt.Sprintf("state = $%d", len(args)))
	}
	args = append(args, input.Limit, input.Offset)

	query := fmt.Sprintf(`
		SELECT id, user_id, title, description, state, created_at, updated_at
		FROM todos
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []*domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	query := `
		UPDATE todos
		SET    title       = $2,
		       description = $3,
		       state       = $4,
		       updated_at  = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, description, state, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, todo.ID, todo.Title, todo.Description, todo.State)
	return scanTodo(row)
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) PurgeTrashed(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE state = 'trash' AND updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge trashed todos: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.State, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("scan todo: %w", err)
	}
	return &t, nil
}
