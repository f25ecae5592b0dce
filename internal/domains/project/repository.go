package project

import "context"

// Repository is the data access contract. The docstore-backed
// implementation is the only one today; a database-backed one
// would slot in here without touching the service.
type Repository interface {
	// ListAll returns every project in creation order
	ListAll(ctx context.Context) ([]Project, error)

	// GetByID returns ErrProjectNotFound for unknown ids
	GetByID(ctx context.Context, id int64) (*Project, error)

	// Create assigns id and created_at before persisting
	Create(ctx context.Context, p *Project) error

	// Update replaces the stored document and refreshes updated_at.
	// Returns ErrProjectNotFound for unknown ids.
	Update(ctx context.Context, p *Project) error

	// Delete removes the document permanently (no soft delete)
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored projects
	Count(ctx context.Context) (int, error)
}
