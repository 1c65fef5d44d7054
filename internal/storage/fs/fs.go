package fs

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/storage"
)

const (
	textExt   = ".txt"
	paramsExt = ".json"
)

// Store keeps each prompt as a pair of files under a root directory:
// <id>.txt holds the raw template text and <id>.json the parameter histories
// as a JSON object mapping keyword to []string. Identifiers containing
// slashes nest into subdirectories.
type Store struct {
	root string
}

// New creates the root directory if needed and returns a filesystem store.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, domain.InvalidArgumentError{Reason: "filesystem storage requires a root directory"}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating prompts directory %s", root)
	}
	return &Store{root: root}, nil
}

// Root returns the directory prompts are stored under.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Record, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	text, err := os.ReadFile(s.textPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NotFoundError{ID: id}
		}
		return nil, errors.Wrapf(err, "reading prompt %s", id)
	}

	params := map[string][]string{}
	raw, err := os.ReadFile(s.paramsPath(id))
	switch {
	case os.IsNotExist(err):
		// A prompt without a parameters file is valid; it just has no history.
	case err != nil:
		return nil, errors.Wrapf(err, "reading parameters for %s", id)
	default:
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, errors.Wrapf(err, "parsing parameters for %s", id)
		}
	}
	return &storage.Record{Text: string(text), Parameters: params}, nil
}

func (s *Store) Save(ctx context.Context, id string, text string, parameters map[string][]string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if parameters == nil {
		parameters = map[string][]string{}
	}
	dir := filepath.Dir(s.textPath(id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", id)
	}
	if err := os.WriteFile(s.textPath(id), []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "writing prompt %s", id)
	}
	raw, err := json.MarshalIndent(parameters, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "serializing parameters for %s", id)
	}
	if err := os.WriteFile(s.paramsPath(id), raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing parameters for %s", id)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if _, err := os.Stat(s.textPath(id)); os.IsNotExist(err) {
		return domain.NotFoundError{ID: id}
	}
	if err := os.Remove(s.textPath(id)); err != nil {
		return errors.Wrapf(err, "deleting prompt %s", id)
	}
	if err := os.Remove(s.paramsPath(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting parameters for %s", id)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, textExt) {
			return nil
		}
		id, err := s.idFor(path)
		if err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing prompts")
	}
	sort.Strings(ids)
	return ids, nil
}

// Search returns ids whose identifier or raw text contains term,
// case-insensitive.
func (s *Store) Search(ctx context.Context, term string) ([]string, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var matches []string
	for _, id := range ids {
		if strings.Contains(strings.ToLower(id), term) {
			matches = append(matches, id)
			continue
		}
		text, err := os.ReadFile(s.textPath(id))
		if err != nil {
			return nil, errors.Wrapf(err, "reading prompt %s", id)
		}
		if strings.Contains(strings.ToLower(string(text)), term) {
			matches = append(matches, id)
		}
	}
	return matches, nil
}

func (s *Store) textPath(id string) string {
	return filepath.Join(s.root, filepath.FromSlash(id)+textExt)
}

func (s *Store) paramsPath(id string) string {
	return filepath.Join(s.root, filepath.FromSlash(id)+paramsExt)
}

func (s *Store) idFor(path string) (string, error) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, textExt)), nil
}
