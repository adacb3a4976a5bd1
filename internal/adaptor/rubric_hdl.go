package adaptor

import (
	"encoding/json"
	"net/http"

	"media-ratings/internal/dto/request"
	"media-ratings/internal/usecase"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RubricHandler serves both /api/categories and /api/genres. The kind string
// only shows up in logs and response messages.
type RubricHandler struct {
	service usecase.RubricService
	kind    string
	log     *zap.Logger
}

func NewRubricHandler(service usecase.RubricService, kind string, log *zap.Logger) *RubricHandler {
	return &RubricHandler{
		service: service,
		kind:    kind,
		log:     log.With(zap.String("handler", kind)),
	}
}

// List handles GET /api/{categories|genres}
func (h *RubricHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := parsePagination(query)

	result, err := h.service.List(r.Context(), query.Get("search"), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list "+h.kind)
		return
	}

	utils.ResponseSuccess(w, "Retrieved successfully", result)
}

// Create handles POST /api/{categories|genres} (admin only)
func (h *RubricHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.RubricRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create "+h.kind)
		return
	}

	utils.ResponseCreated(w, "Created successfully", result)
}

// Delete handles DELETE /api/{categories|genres}/{slug} (admin only)
func (h *RubricHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slugValue := chi.URLParam(r, "slug")
	if slugValue == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), slugValue); err != nil {
		handleServiceError(w, h.log, err, "delete "+h.kind)
		return
	}

	utils.ResponseNoContent(w)
}
