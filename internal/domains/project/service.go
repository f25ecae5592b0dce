package project

import "context"

// Service is the business logic contract
type Service interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (*Project, error)
	Update(ctx context.Context, id int64, req UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, id int64) error
}
