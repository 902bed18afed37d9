// AngelaMos | 2026
// handler.go

package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/uniplanner/backend/internal/core"
	"github.com/uniplanner/backend/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/tasks", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{taskID}", h.Update)
		r.Patch("/{taskID}/toggle", h.ToggleComplete)
		r.Delete("/{taskID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var classID *int64
	if raw := r.URL.Query().Get("classId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			core.BadRequest(w, "classId must be an integer")
			return
		}
		classID = &parsed
	}

	tasks, err := h.service.List(r.Context(), ownerID, classID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, tasks)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.Create(r.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, ErrClassNotOwned) {
			core.BadRequest(w, "class not found")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CreateResponse{
		ID:      t.ID,
		Message: "task created successfully",
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	id, ok := parseTaskID(r)
	if !ok {
		core.NotFound(w, "task")
		return
	}

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Update(r.Context(), ownerID, id, req); err != nil {
		if errors.Is(err, ErrClassNotOwned) {
			core.BadRequest(w, "class not found")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "task")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Message(w, "task updated successfully")
}

func (h *Handler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	id, ok := parseTaskID(r)
	if !ok {
		core.NotFound(w, "task")
		return
	}

	completed, err := h.service.ToggleComplete(r.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "task")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToggleResponse{Completed: completed})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	id, ok := parseTaskID(r)
	if !ok {
		core.NotFound(w, "task")
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "task")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Message(w, "task deleted successfully")
}

func parseTaskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
