//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package message

import "context"

// Repository defines the persistence operations for messages.
//
// It is implemented by infrastructure layers (e.g. GORM) while the
// service layer depends only on this interface.
type Repository interface {
	// List returns the messages inside w, newest first, along with the
	// total number of rows in the table. The two reads are not required
	// to observe the same snapshot.
	List(ctx context.Context, w Window) ([]*Message, int64, error)

	// Save inserts a new message. Used by the seed tool only.
	Save(ctx context.Context, msg *Message) error
}
