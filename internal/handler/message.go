package handler

import (
	"net/http"

	"github.com/oggyb/messages-api/internal/apperror"
	"github.com/oggyb/messages-api/internal/request"
	"github.com/oggyb/messages-api/internal/response"
	"github.com/oggyb/messages-api/internal/service"
)

// MessageHandler wires HTTP endpoints to the message service.
type MessageHandler struct {
	msgSvc service.MessageService
}

// NewMessageHandler constructs a new MessageHandler with its dependencies.
func NewMessageHandler(msgSvc service.MessageService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc}
}

// ListMessages godoc
// @Summary     List messages
// @Description Returns one page of messages ordered by creation time, newest first, with the total row count.
// @Tags        messages
// @Produce     json
// @Param       page     query int false "Page number, 1-based" default(1)  minimum(1)
// @Param       per_page query int false "Page size"            default(10) minimum(1)
// @Success     200 {object} response.PaginatedMessages
// @Failure     400 {object} response.ErrorBody
// @Failure     500 {object} response.ErrorBody
// @Router      /messages [get]
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) error {
	params, err := request.ParsePagination(r)
	if err != nil {
		return apperror.BadRequest("parse pagination", err)
	}

	page, perPage := params.Values()

	result, err := h.msgSvc.List(r.Context(), page, perPage)
	if err != nil {
		return err
	}

	response.RespondJSON(w, http.StatusOK, response.FromDomainPage(result))
	return nil
}
