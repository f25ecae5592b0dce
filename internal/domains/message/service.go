package message

import "context"

// Service is the business logic contract
type Service interface {
	List(ctx context.Context) ([]Message, error)
	Create(ctx context.Context, req CreateMessageRequest) (*Message, error)
	MarkRead(ctx context.Context, id int64) (*Message, error)
	Delete(ctx context.Context, id int64) error
}
