// AngelaMos | 2026
// handler.go

package class

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
	r.Route("/classes", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{classID}", h.Update)
		r.Delete("/{classID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	classes, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, classes)
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

	c, err := h.service.Create(r.Context(), ownerID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CreateResponse{
		ID:      c.ID,
		Message: "class created successfully",
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	id, ok := parseClassID(r)
	if !ok {
		core.NotFound(w, "class")
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
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "class")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Message(w, "class updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	id, ok := parseClassID(r)
	if !ok {
		core.NotFound(w, "class")
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "class")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Message(w, "class deleted successfully")
}

// A non-numeric id is reported as NotFound, same as an ownership miss, so
// the response does not reveal whether the id could exist.
func parseClassID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "classID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
