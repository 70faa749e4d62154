package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/transport/http/handler"
	"github.com/tiago154/fast-zero/internal/usecase"
)

type fakeTodoUsecase struct {
	create func(ctx context.Context, principal *domain.User, input usecase.CreateTodoInput) (*domain.Todo, error)
	list   func(ctx context.Context, principal *domain.User, input usecase.ListTodosInput) ([]*domain.Todo, error)
	update func(ctx context.Context, principal *domain.User, id int64, input usecase.UpdateTodoInput) (*domain.Todo, error)
	delete func(ctx context.Context, principal *domain.User, id int64) error
}

func (f *fakeTodoUsecase) Create(ctx context.Context, principal *domain.User, input usecase.CreateTodoInput) (*domain.Todo, error) {
	return f.create(ctx, principal, input)
}

func (f *fakeTodoUsecase) List(ctx context.Context, principal *domain.User, input usecase.ListTodosInput) ([]*domain.Todo, error) {
	return f.list(ctx, principal, input)
}

func (f *fakeTodoUsecase) Update(ctx context.Context, principal *domain.User, id int64, input usecase.UpdateTodoInput) (*domain.Todo, error) {
	return f.update(ctx, principal, id, input)
}

func (f *fakeTodoUsecase) Delete(ctx context.Context, principal *domain.User, id int64) error {
	return f.delete(ctx, principal, id)
}

func newTodoEngine(uc *fakeTodoUsecase, principal *domain.User) *gin.Engine {
	h := handler.NewTodoHandler(uc, testLogger())

	r := gin.New()
	g := r.Group("/api/todos", withPrincipal(principal))
	g.POST("", h.Create)
	g.GET("", h.List)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

var todoPrincipal = &domain.User{ID: 1, Username: "alice"}

// ---- Create ----

func TestCreateTodo_MissingTitle_Returns400(t *testing.T) {
	uc := &fakeTodoUsecase{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos",
		strings.NewReader(`{"description":"no title"}`))
	req.Header.Set("Content-Type", "application/json")
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTodo_UnknownState_Returns400(t *testing.T) {
	uc := &fakeTodoUsecase{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos",
		strings.NewReader(`{"title":"buy milk","state":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTodo_Success_Returns201(t *testing.T) {
	uc := &fakeTodoUsecase{
		create: func(_ context.Context, principal *domain.User, input usecase.CreateTodoInput) (*domain.Todo, error) {
			if principal.ID != todoPrincipal.ID {
				t.Errorf("principal = %d, want %d", principal.ID, todoPrincipal.ID)
			}
			return &domain.Todo{ID: 10, UserID: principal.ID, Title: input.Title, State: domain.StateDraft}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos",
		strings.NewReader(`{"title":"buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"state":"draft"`) {
		t.Errorf("body = %s", body)
	}
	if strings.Contains(body, "user_id") {
		t.Errorf("body exposes owner id: %s", body)
	}
}

// ---- List ----

func TestListTodos_InvalidStateFilter_Returns400(t *testing.T) {
	uc := &fakeTodoUsecase{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos?state=archived", nil)
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListTodos_PassesFilters(t *testing.T) {
	var got usecase.ListTodosInput
	uc := &fakeTodoUsecase{
		list: func(_ context.Context, _ *domain.User, input usecase.ListTodosInput) ([]*domain.Todo, error) {
			got = input
			return []*domain.Todo{}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/todos?title=milk&state=doing&limit=5&offset=2", nil)
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got.Title != "milk" || got.State != domain.StateDoing || got.Limit != 5 || got.Offset != 2 {
		t.Errorf("filters = %+v", got)
	}
	if !strings.Contains(w.Body.String(), `"todos":[]`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

// ---- Update ----

func TestUpdateTodo_NotFound_Returns404(t *testing.T) {
	uc := &fakeTodoUsecase{
		update: func(_ context.Context, _ *domain.User, _ int64, _ usecase.UpdateTodoInput) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/todos/99",
		strings.NewReader(`{"state":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Task not found") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUpdateTodo_Forbidden_Returns403(t *testing.T) {
	uc := &fakeTodoUsecase{
		update: func(_ context.Context, _ *domain.User, _ int64, _ usecase.UpdateTodoInput) (*domain.Todo, error) {
			return nil, domain.ErrForbidden
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/todos/10",
		strings.NewReader(`{"state":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Not enough permission") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUpdateTodo_PartialBody_PassesOnlyProvidedFields(t *testing.T) {
	var got usecase.UpdateTodoInput
	uc := &fakeTodoUsecase{
		update: func(_ context.Context, _ *domain.User, id int64, input usecase.UpdateTodoInput) (*domain.Todo, error) {
			got = input
			return &domain.Todo{ID: id, UserID: todoPrincipal.ID, Title: "kept", State: *input.State}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/todos/10",
		strings.NewReader(`{"state":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got.Title != nil || got.Description != nil {
		t.Errorf("unset fields should stay nil: %+v", got)
	}
	if got.State == nil || *got.State != domain.StateDone {
		t.Errorf("state = %v, want done", got.State)
	}
}

// ---- Delete ----

func TestDeleteTodo_Success_ReturnsMessage(t *testing.T) {
	uc := &fakeTodoUsecase{
		delete: func(_ context.Context, _ *domain.User, id int64) error {
			if id != 10 {
				t.Errorf("id = %d, want 10", id)
			}
			return nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/todos/10", nil)
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Task has been deleted successfully") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestDeleteTodo_Forbidden_Returns403(t *testing.T) {
	uc := &fakeTodoUsecase{
		delete: func(_ context.Context, _ *domain.User, _ int64) error {
			return domain.ErrForbidden
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/todos/10", nil)
	newTodoEngine(uc, todoPrincipal).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
