package service

import (
	"context"

	"portfolio-backend/internal/domains/message"
)

type messageService struct {
	repo message.Repository
}

func NewMessageService(repo message.Repository) message.Service {
	return &messageService{repo: repo}
}

func (s *messageService) List(ctx context.Context) ([]message.Message, error) {
	return s.repo.ListAll(ctx)
}

// Create validates the submission before anything touches the store
func (s *messageService) Create(ctx context.Context, req message.CreateMessageRequest) (*message.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m := message.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *messageService) MarkRead(ctx context.Context, id int64) (*message.Message, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *messageService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
