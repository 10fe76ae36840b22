package handler

import (
	"net/http"

	"github.com/oggyb/messages-api/internal/response"
	"github.com/oggyb/messages-api/internal/service"
)

// TimestampHandler exposes the object store timestamp endpoints.
type TimestampHandler struct {
	tsSvc service.TimestampService
}

// NewTimestampHandler constructs a new TimestampHandler.
func NewTimestampHandler(tsSvc service.TimestampService) *TimestampHandler {
	return &TimestampHandler{tsSvc: tsSvc}
}

// WriteTimestamp godoc
// @Summary     Write timestamp
// @Description Stores "Current timestamp: <now>" in the object store and returns the bare timestamp.
// @Tags        timestamp
// @Produce     json
// @Success     200 {object} response.TimestampWriteResponse
// @Failure     500 {object} response.ErrorBody
// @Router      /timestamp [post]
func (h *TimestampHandler) WriteTimestamp(w http.ResponseWriter, r *http.Request) error {
	ts, err := h.tsSvc.Write(r.Context())
	if err != nil {
		return err
	}

	response.RespondJSON(w, http.StatusOK, response.TimestampWriteResponse{
		Status:    response.StatusOK,
		Timestamp: ts,
	})
	return nil
}

// ReadTimestamp godoc
// @Summary     Read timestamp
// @Description Returns the stored object verbatim, including its "Current timestamp: " prefix.
// @Tags        timestamp
// @Produce     json
// @Success     200 {object} response.TimestampReadResponse
// @Failure     500 {object} response.ErrorBody
// @Router      /timestamp [get]
func (h *TimestampHandler) ReadTimestamp(w http.ResponseWriter, r *http.Request) error {
	content, err := h.tsSvc.Read(r.Context())
	if err != nil {
		return err
	}

	response.RespondJSON(w, http.StatusOK, response.TimestampReadResponse{
		Status:  response.StatusOK,
		Content: content,
	})
	return nil
}
