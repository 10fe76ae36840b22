package messagegorm

import (
	"github.com/oggyb/messages-api/internal/domain/message"
)

// toDomain maps a GORM MessageModel to a domain-level Message.
func toDomain(m *MessageModel) *message.Message {
	return &message.Message{
		ID:        m.ID,
		Content:   m.Content,
		Author:    m.Author,
		CreatedAt: m.CreatedAt,
	}
}

// toDomainMany maps a slice of MessageModel to a slice of domain Messages.
func toDomainMany(models []MessageModel) []*message.Message {
	out := make([]*message.Message, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Message to a GORM MessageModel.
func fromDomain(d *message.Message) *MessageModel {
	return &MessageModel{
		ID:        d.ID,
		Content:   d.Content,
		Author:    d.Author,
		CreatedAt: d.CreatedAt,
	}
}
