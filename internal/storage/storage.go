package storage

import "context"

// Record is the persisted shape of one prompt: its raw template text and the
// parameter histories keyed by keyword token (last element = current value).
type Record struct {
	Text       string
	Parameters map[string][]string
}

// Store is the storage collaborator consumed by the renderer and the service
// layer. Implementations live in the fs, sqlite and memory subpackages.
//
// Get returns domain.NotFoundError when id does not resolve; Delete does the
// same. Save overwrites any existing record for id.
type Store interface {
	Get(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, id string, text string, parameters map[string][]string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
	Search(ctx context.Context, term string) ([]string, error)
}
