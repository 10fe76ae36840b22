package service

import (
	"context"

	"github.com/oggyb/messages-api/internal/apperror"
	domain "github.com/oggyb/messages-api/internal/domain/message"
)

type MessageService interface {
	List(ctx context.Context, page, perPage int) (*domain.Page, error)
}

type messageService struct {
	repo domain.Repository
}

// NewMessageService creates a message service reading through repo.
func NewMessageService(repo domain.Repository) MessageService {
	return &messageService{repo: repo}
}

// List returns one page of messages, newest first, with the full row count.
// Repository failures come back tagged as apperror.KindDatabase and are not retried.
func (s *messageService) List(ctx context.Context, page, perPage int) (*domain.Page, error) {
	w, err := domain.NewWindow(page, perPage)
	if err != nil {
		return nil, apperror.BadRequest("list messages", err)
	}

	msgs, total, err := s.repo.List(ctx, w)
	if err != nil {
		return nil, apperror.Database("list messages", err)
	}

	return &domain.Page{
		Messages: msgs,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}
