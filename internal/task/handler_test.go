// AngelaMos | 2026
// handler_test.go

package task

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/uniplanner/backend/internal/core"
	"github.com/uniplanner/backend/internal/middleware"
)

type fakeRepository struct {
	tasks  map[int64]*Task
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tasks:  make(map[int64]*Task),
		nextID: 1,
	}
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	ownerID int64,
	classID *int64,
) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		if t.UserID != ownerID {
			continue
		}
		if classID != nil && (t.ClassID == nil || *t.ClassID != *classID) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepository) Create(_ context.Context, t *Task) error {
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	f.nextID++

	stored := *t
	f.tasks[t.ID] = &stored
	return nil
}

func (f *fakeRepository) Update(_ context.Context, t *Task) error {
	existing, ok := f.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return fmt.Errorf("update task: %w", core.ErrNotFound)
	}

	t.Completed = existing.Completed
	t.CreatedAt = existing.CreatedAt
	stored := *t
	f.tasks[t.ID] = &stored
	return nil
}

func (f *fakeRepository) ToggleComplete(
	_ context.Context,
	id, ownerID int64,
) (bool, error) {
	existing, ok := f.tasks[id]
	if !ok || existing.UserID != ownerID {
		return false, fmt.Errorf("toggle task: %w", core.ErrNotFound)
	}

	existing.Completed = !existing.Completed
	return existing.Completed, nil
}

func (f *fakeRepository) Delete(_ context.Context, id, ownerID int64) error {
	existing, ok := f.tasks[id]
	if !ok || existing.UserID != ownerID {
		return fmt.Errorf("delete task: %w", core.ErrNotFound)
	}

	delete(f.tasks, id)
	return nil
}

type fakeClassChecker struct {
	owned map[int64]int64 // class id -> owner id
}

func (f *fakeClassChecker) OwnedBy(
	_ context.Context,
	classID, ownerID int64,
) (bool, error) {
	owner, ok := f.owned[classID]
	return ok && owner == ownerID, nil
}

func asUser(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(
	repo Repository,
	classes ClassChecker,
	userID int64,
) chi.Router {
	handler := NewHandler(NewService(repo, classes))
	router := chi.NewRouter()
	handler.RegisterRoutes(router, asUser(userID))
	return router
}

func TestCreateTask(t *testing.T) {
	checker := &fakeClassChecker{owned: map[int64]int64{10: 1}}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "minimal",
			body:       `{"title":"Read chapter 4"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "with owned class",
			body:       `{"title":"Lab report","class_id":10,"due_date":"2026-09-15"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "class belongs to someone else",
			body:       `{"title":"Lab report","class_id":99}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "class not found",
		},
		{
			name:       "missing title",
			body:       `{"due_date":"2026-09-15"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad due date",
			body:       `{"title":"Lab report","due_date":"15/09/2026"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(newFakeRepository(), checker, 1)

			req := httptest.NewRequest(
				http.MethodPost,
				"/tasks/",
				strings.NewReader(tt.body),
			)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s",
					rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantError != "" &&
				!strings.Contains(rec.Body.String(), tt.wantError) {
				t.Errorf("body = %q, want it to contain %q",
					rec.Body.String(), tt.wantError)
			}
		})
	}
}

func TestToggleTask(t *testing.T) {
	repo := newFakeRepository()
	checker := &fakeClassChecker{owned: map[int64]int64{}}

	task := &Task{UserID: 1, Title: "Submit form"}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	router := newTestRouter(repo, checker, 1)

	toggle := func() ToggleResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodPatch, "/tasks/1/toggle", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		var resp ToggleResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return resp
	}

	if resp := toggle(); !resp.Completed {
		t.Error("first toggle: completed = false, want true")
	}
	if resp := toggle(); resp.Completed {
		t.Error("second toggle: completed = true, want false")
	}
}

func TestToggleTaskNotOwned(t *testing.T) {
	repo := newFakeRepository()
	task := &Task{UserID: 2, Title: "Someone else's"}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	router := newTestRouter(repo, &fakeClassChecker{}, 1)

	req := httptest.NewRequest(http.MethodPatch, "/tasks/1/toggle", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestListTasksFilteredByClass(t *testing.T) {
	repo := newFakeRepository()
	ctx := context.Background()

	classID := int64(10)
	linked := &Task{UserID: 1, Title: "Linked", ClassID: &classID}
	loose := &Task{UserID: 1, Title: "Loose"}
	if err := repo.Create(ctx, linked); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, loose); err != nil {
		t.Fatal(err)
	}

	router := newTestRouter(repo, &fakeClassChecker{}, 1)

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{name: "all tasks", path: "/tasks/", wantCount: 2},
		{name: "class filter", path: "/tasks/?classId=10", wantCount: 1},
		{name: "empty class", path: "/tasks/?classId=11", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			var tasks []Response
			if err := json.NewDecoder(rec.Body).Decode(&tasks); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(tasks) != tt.wantCount {
				t.Errorf("len(tasks) = %d, want %d", len(tasks), tt.wantCount)
			}
		})
	}
}

func TestUpdateTaskClassOwnership(t *testing.T) {
	repo := newFakeRepository()
	task := &Task{UserID: 1, Title: "Mine"}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	router := newTestRouter(repo, &fakeClassChecker{owned: map[int64]int64{10: 2}}, 1)

	req := httptest.NewRequest(
		http.MethodPut,
		"/tasks/1",
		strings.NewReader(`{"title":"Mine","class_id":10}`),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "class not found") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestParseDueDate(t *testing.T) {
	valid := "2026-09-15"
	empty := ""
	bad := "yesterday"

	tests := []struct {
		name    string
		raw     *string
		wantNil bool
		wantErr bool
	}{
		{name: "nil", raw: nil, wantNil: true},
		{name: "empty", raw: &empty, wantNil: true},
		{name: "valid", raw: &valid},
		{name: "unparsable", raw: &bad, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDueDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDueDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (got == nil) != tt.wantNil {
				t.Fatalf("parseDueDate() = %v, wantNil %v", got, tt.wantNil)
			}
			if got != nil && got.Format(dueDateLayout) != valid {
				t.Errorf("parseDueDate() = %v, want %s", got, valid)
			}
		})
	}
}
