package profile

import "context"

// Service is the business logic contract
type Service interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, req UpdateProfileRequest) (*Profile, error)
}
