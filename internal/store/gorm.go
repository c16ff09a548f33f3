package store

import (
	"encoding/json"
	"errors"

	"github.com/obaspub/scholarsite/backend/internal/models"
	"gorm.io/gorm"
)

// GormStore persists documents in the store_records table. It works on
// any of the configured database backends (sqlite, mysql, postgres).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(key string) (json.RawMessage, error) {
	var record models.StoreRecord
	if err := s.db.Where("record_key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(record.Value), nil
}

func (s *GormStore) Save(key string, value json.RawMessage) error {
	var record models.StoreRecord
	err := s.db.Where("record_key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.StoreRecord{Key: key, Value: string(value)}
		return s.db.Create(&record).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&record).Update("value", string(value)).Error
}
