package message

import "context"

// Repository is the data access contract for the contact inbox.
// There is no generic update: a message never changes after
// creation except through MarkRead.
type Repository interface {
	// ListAll returns every message, newest first
	ListAll(ctx context.Context) ([]Message, error)

	// GetByID returns ErrMessageNotFound for unknown ids
	GetByID(ctx context.Context, id int64) (*Message, error)

	// Create assigns id and created_at, read starts false
	Create(ctx context.Context, m *Message) error

	// MarkRead flips the read flag and returns the message
	MarkRead(ctx context.Context, id int64) (*Message, error)

	// Delete removes the message permanently
	Delete(ctx context.Context, id int64) error

	// Count returns total and unread message counts
	Count(ctx context.Context) (total, unread int, err error)
}
