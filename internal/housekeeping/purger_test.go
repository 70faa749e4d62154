package housekeeping

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/repository"
)

type fakeTodoRepo struct {
	purgeTrashed func(ctx context.Context, cutoff time.Time) (int, error)
}

func (r *fakeTodoRepo) Create(context.Context, *domain.Todo) (*domain.Todo, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTodoRepo) FindByID(context.Context, int64) (*domain.Todo, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTodoRepo) List(context.Context, repository.ListTodosInput) ([]*domain.Todo, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTodoRepo) Update(context.Context, *domain.Todo) (*domain.Todo, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTodoRepo) Delete(context.Context, int64) error {
	return errors.New("not implemented")
}

func (r *fakeTodoRepo) PurgeTrashed(ctx context.Context, cutoff time.Time) (int, error) {
	return r.purgeTrashed(ctx, cutoff)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPurger_InvalidSpec(t *testing.T) {
	_, err := NewPurger(&fakeTodoRepo{}, discardLogger(), "not a cron spec", time.Hour)
	if err == nil {
		t.Fatal("expected error for malformed cron spec")
	}
}

func TestPurge_CutoffIsNowMinusRetention(t *testing.T) {
	epoch := time.Date(2025, time.June, 1, 3, 0, 0, 0, time.UTC)
	retention := 30 * 24 * time.Hour

	var gotCutoff time.Time
	repo := &fakeTodoRepo{
		purgeTrashed: func(_ context.Context, cutoff time.Time) (int, error) {
			gotCutoff = cutoff
			return 3, nil
		},
	}

	p, err := NewPurger(repo, discardLogger(), "0 3 * * *", retention)
	if err != nil {
		t.Fatalf("new purger: %v", err)
	}
	p.now = func() time.Time { return epoch }

	p.purge(context.Background())

	if want := epoch.Add(-retention); !gotCutoff.Equal(want) {
		t.Errorf("cutoff = %v, want %v", gotCutoff, want)
	}
}

func TestPurge_RepositoryError_DoesNotPanic(t *testing.T) {
	repo := &fakeTodoRepo{
		purgeTrashed: func(context.Context, time.Time) (int, error) {
			return 0, errors.New("db down")
		},
	}

	p, err := NewPurger(repo, discardLogger(), "0 3 * * *", time.Hour)
	if err != nil {
		t.Fatalf("new purger: %v", err)
	}

	p.purge(context.Background())
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	repo := &fakeTodoRepo{
		purgeTrashed: func(context.Context, time.Time) (int, error) { return 0, nil },
	}

	p, err := NewPurger(repo, discardLogger(), "0 3 * * *", time.Hour)
	if err != nil {
		t.Fatalf("new purger: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not stop after context cancellation")
	}
}
