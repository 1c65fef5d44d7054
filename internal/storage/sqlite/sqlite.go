package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/storage"
)

// promptRecord is the persisted row for one prompt. Parameters holds the
// keyword-to-history mapping as a JSON column.
type promptRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	Text       string
	Parameters datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type promptStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm connection in the storage.Store contract.
func NewStore(db *gorm.DB) storage.Store {
	return &promptStore{db: db}
}

func (s *promptStore) Get(ctx context.Context, id string) (*storage.Record, error) {
	var rec promptRecord
	if err := s.db.WithContext(ctx).Where("slug = ?", id).First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFoundError{ID: id}
		}
		return nil, err
	}
	params := map[string][]string{}
	if len(rec.Parameters) > 0 {
		if err := json.Unmarshal(rec.Parameters, &params); err != nil {
			return nil, fmt.Errorf("failed to parse parameters for %s: %w", id, err)
		}
	}
	return &storage.Record{Text: rec.Text, Parameters: params}, nil
}

func (s *promptStore) Save(ctx context.Context, id string, text string, parameters map[string][]string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if parameters == nil {
		parameters = map[string][]string{}
	}
	raw, err := json.Marshal(parameters)
	if err != nil {
		return fmt.Errorf("failed to serialize parameters for %s: %w", id, err)
	}

	var existing promptRecord
	err = s.db.WithContext(ctx).Where("slug = ?", id).First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		rec := promptRecord{
			ID:         uuid.New(),
			Slug:       id,
			Text:       text,
			Parameters: datatypes.JSON(raw),
		}
		return s.db.WithContext(ctx).Create(&rec).Error
	case err != nil:
		return err
	default:
		return s.db.WithContext(ctx).Model(&existing).
			Updates(map[string]interface{}{"text": text, "parameters": datatypes.JSON(raw)}).Error
	}
}

func (s *promptStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("slug = ?", id).Delete(&promptRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{ID: id}
	}
	return nil
}

func (s *promptStore) List(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := s.db.WithContext(ctx).Model(&promptRecord{}).
		Order("slug ASC").Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

func (s *promptStore) Search(ctx context.Context, term string) ([]string, error) {
	var slugs []string
	pattern := "%" + term + "%"
	if err := s.db.WithContext(ctx).Model(&promptRecord{}).
		Where("slug LIKE ? OR text LIKE ?", pattern, pattern).
		Order("slug ASC").Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}
