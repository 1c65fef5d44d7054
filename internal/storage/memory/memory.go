package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/storage"
)

// Store is a map-backed storage adapter. It backs tests and one-off
// renders where nothing should touch disk.
type Store struct {
	records map[string]storage.Record
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]storage.Record)}
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.NotFoundError{ID: id}
	}
	params := make(map[string][]string, len(rec.Parameters))
	for key, history := range rec.Parameters {
		params[key] = append([]string(nil), history...)
	}
	return &storage.Record{Text: rec.Text, Parameters: params}, nil
}

func (s *Store) Save(ctx context.Context, id string, text string, parameters map[string][]string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	params := make(map[string][]string, len(parameters))
	for key, history := range parameters {
		params[key] = append([]string(nil), history...)
	}
	s.records[id] = storage.Record{Text: text, Parameters: params}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, ok := s.records[id]; !ok {
		return domain.NotFoundError{ID: id}
	}
	delete(s.records, id)
	return nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) Search(ctx context.Context, term string) ([]string, error) {
	term = strings.ToLower(term)
	var ids []string
	for id, rec := range s.records {
		if strings.Contains(strings.ToLower(id), term) ||
			strings.Contains(strings.ToLower(rec.Text), term) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
