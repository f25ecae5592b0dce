package service

import (
	"context"

	"portfolio-backend/internal/domains/profile"
)

type profileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) profile.Service {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context) (*profile.Profile, error) {
	return s.repo.Get(ctx)
}

// Update shallow-merges the patch onto the stored document:
// required fields always overwrite, optional fields only when present.
func (s *profileService) Update(ctx context.Context, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Title = req.Title
	p.Email = req.Email
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Social != nil {
		p.Social = *req.Social
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
