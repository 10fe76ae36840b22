package handler

import (
	"net/http"

	"github.com/oggyb/messages-api/internal/apperror"
	"github.com/oggyb/messages-api/internal/response"
)

// HomeHandler serves the health and fallback endpoints.
type HomeHandler struct{}

// NewHomeHandler returns a new HomeHandler.
func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// Health godoc
// @Summary     Health check
// @Description Returns a static status payload. Does not touch the database or object store.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) error {
	response.RespondJSON(w, http.StatusOK, response.HealthResponse{Status: response.StatusOK})
	return nil
}

// NotFound answers every request that matched no route.
func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) error {
	return apperror.ErrRouteNotFound
}
