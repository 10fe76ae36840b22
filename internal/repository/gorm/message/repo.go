package messagegorm

import (
	"context"
	"fmt"

	"github.com/oggyb/messages-api/internal/db"
	"github.com/oggyb/messages-api/internal/domain/message"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of the message.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a message repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// List counts the whole table, then fetches one window ordered newest first.
// Each read gets its own session so the count does not leak into the select.
func (r *Repository) List(ctx context.Context, w message.Window) ([]*message.Message, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&MessageModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	var models []MessageModel
	err := r.db.WithContext(ctx).
		Select("id", "content", "author", "created_at").
		Order("created_at DESC").
		Order("id DESC").
		Limit(w.Limit).
		Offset(w.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("select messages: %w", err)
	}

	return toDomainMany(models), total, nil
}

// Save inserts a new message record and writes the generated ID back.
func (r *Repository) Save(ctx context.Context, msg *message.Message) error {
	dbModel := fromDomain(msg)
	if err := r.db.WithContext(ctx).Create(dbModel).Error; err != nil {
		return err
	}
	msg.ID = dbModel.ID
	return nil
}

// compile-time interface check
var _ message.Repository = (*Repository)(nil)
