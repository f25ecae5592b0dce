package service

import (
	"context"

	"portfolio-backend/internal/domains/project"
)

type projectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) project.Service {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]project.Project, error) {
	return s.repo.ListAll(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, req project.CreateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := project.Project{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Technologies: req.Technologies,
		GitHub:       req.GitHub,
		Live:         req.Live,
		Featured:     req.Featured,
		Published:    req.Published,
	}
	if p.Image == "" {
		p.Image = project.DefaultImage
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a shallow merge: only fields present in the patch
// overwrite the stored document, everything else is preserved.
func (s *projectService) Update(ctx context.Context, id int64, req project.UpdateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Technologies != nil {
		p.Technologies = *req.Technologies
	}
	if req.GitHub != nil {
		p.GitHub = *req.GitHub
	}
	if req.Live != nil {
		p.Live = *req.Live
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
