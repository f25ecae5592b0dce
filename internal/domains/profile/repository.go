package profile

import "context"

// Repository persists the singleton profile document
type Repository interface {
	// Get always succeeds once the repository is constructed;
	// the document is seeded with defaults on first run.
	Get(ctx context.Context) (*Profile, error)

	// Update replaces the document and refreshes updated_at
	Update(ctx context.Context, p *Profile) error
}
