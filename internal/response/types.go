package response

import (
	"time"

	domain "github.com/oggyb/messages-api/internal/domain/message"
	"github.com/samber/lo"
)

// StatusOK is the status value of successful status payloads.
const StatusOK = "ok"

type HealthResponse struct {
	Status string `json:"status"`
}

type TimestampWriteResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type TimestampReadResponse struct {
	Status  string `json:"status"`
	Content string `json:"content"`
}

// MessageDTO is the public representation of a message row.
type MessageDTO struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginatedMessages struct {
	Messages []MessageDTO `json:"messages"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PerPage  int          `json:"per_page"`
}

// FromDomainPage converts a domain page into its wire shape. Messages is
// never nil so an empty page encodes as [].
func FromDomainPage(p *domain.Page) PaginatedMessages {
	return PaginatedMessages{
		Messages: lo.Map(p.Messages, func(m *domain.Message, _ int) MessageDTO {
			return MessageDTO{
				ID:        m.ID,
				Content:   m.Content,
				Author:    m.Author,
				CreatedAt: m.CreatedAt,
			}
		}),
		Total:   p.Total,
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}
