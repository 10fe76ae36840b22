// Package message holds the domain model and pagination rules for messages.
package message

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	// DefaultPage is used when the caller does not ask for a page.
	DefaultPage = 1
	// DefaultPerPage is used when the caller does not ask for a page size.
	DefaultPerPage = 10

	// MaxAuthorLength matches the author column width.
	MaxAuthorLength = 100
)

var (
	// ErrEmptyAuthor is returned when no author is provided.
	ErrEmptyAuthor = errors.New("message author is required")
	// ErrEmptyContent is returned when the message body is empty.
	ErrEmptyContent = errors.New("message content is required")
	// ErrAuthorTooLong is returned when the author exceeds MaxAuthorLength.
	ErrAuthorTooLong = errors.New("message author exceeds maximum length")
	// ErrWindowOverflow is returned when (page-1)*perPage does not fit in an int.
	ErrWindowOverflow = errors.New("page window offset overflows")
)

// Message is a read-only record of the messages table.
type Message struct {
	ID        int64
	Content   string
	Author    string
	CreatedAt time.Time
}

// NewMessage builds a message for insertion by an external writer such as
// the seed tool. The API itself never creates messages.
func NewMessage(author, content string, createdAt time.Time) (*Message, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)

	if author == "" {
		return nil, ErrEmptyAuthor
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(author) > MaxAuthorLength {
		return nil, ErrAuthorTooLong
	}

	return &Message{
		Content:   content,
		Author:    author,
		CreatedAt: createdAt,
	}, nil
}

// Window is the offset/limit pair a page request translates to.
type Window struct {
	Offset int
	Limit  int
}

// NewWindow converts a 1-based page and a page size into a Window.
// Callers are expected to pass page >= 1 and perPage >= 1; an offset that
// would not fit in an int is rejected instead of wrapping.
func NewWindow(page, perPage int) (Window, error) {
	if perPage > 0 && page-1 > math.MaxInt/perPage {
		return Window{}, ErrWindowOverflow
	}
	return Window{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	}, nil
}

// Page is one window of messages plus the full row count.
type Page struct {
	Messages []*Message
	Total    int64
	Page     int
	PerPage  int
}
