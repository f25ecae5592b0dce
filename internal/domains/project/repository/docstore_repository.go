package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/infrastructure/docstore"
)

const collection = "projects"

// docstoreRepository keeps the working set in memory and persists
// the whole collection to the docstore after every mutation.
// The mutex gives each call read-committed consistency; concurrent
// updates to the same id are last-writer-wins.
type docstoreRepository struct {
	store *docstore.Store

	mu       sync.RWMutex
	projects []project.Project
	lastID   int64
}

// NewDocstoreRepository loads the collection from disk. A missing
// file means an empty collection, not an error.
func NewDocstoreRepository(store *docstore.Store) (project.Repository, error) {
	r := &docstoreRepository{store: store}

	if err := store.Read(collection, &r.projects); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load projects: %w", err)
		}
		r.projects = []project.Project{}
	}

	for _, p := range r.projects {
		if p.ID > r.lastID {
			r.lastID = p.ID
		}
	}

	return r, nil
}

func (r *docstoreRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]project.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *docstoreRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

func (r *docstoreRepository) Create(ctx context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.ID = r.nextID(now)
	p.CreatedAt = now
	p.UpdatedAt = now

	r.projects = append(r.projects, *p)
	return r.persist()
}

func (r *docstoreRepository) Update(ctx context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			r.projects[i] = *p
			return r.persist()
		}
	}
	return project.ErrProjectNotFound
}

func (r *docstoreRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return r.persist()
		}
	}
	return project.ErrProjectNotFound
}

func (r *docstoreRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects), nil
}

// nextID derives ids from the clock, bumped past the last issued id
// so two creates in the same millisecond never collide.
func (r *docstoreRepository) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *docstoreRepository) persist() error {
	return r.store.Write(collection, r.projects)
}
