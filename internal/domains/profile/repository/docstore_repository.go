package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/infrastructure/docstore"
)

const collection = "personal"

type docstoreRepository struct {
	store *docstore.Store

	mu      sync.RWMutex
	profile profile.Profile
}

// NewDocstoreRepository loads the profile or seeds the default one
// when the backing file does not exist yet.
func NewDocstoreRepository(store *docstore.Store) (profile.Repository, error) {
	r := &docstoreRepository{store: store}

	if err := store.Read(collection, &r.profile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		r.profile = profile.Default()
		if err := store.Write(collection, r.profile); err != nil {
			return nil, fmt.Errorf("seed profile: %w", err)
		}
	}

	return r, nil
}

func (r *docstoreRepository) Get(ctx context.Context) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.profile
	return &p, nil
}

func (r *docstoreRepository) Update(ctx context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.UpdatedAt = time.Now().UTC()
	r.profile = *p
	return r.store.Write(collection, r.profile)
}
