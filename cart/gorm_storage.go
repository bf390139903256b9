package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/emberhollow/storefront/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRecord is the persisted cart snapshot row. One row per cart key;
// the snapshot body is stored as JSON.
type SnapshotRecord struct {
	CartKey   string              `gorm:"primaryKey" json:"cart_key"`
	Snapshot  models.CartSnapshot `gorm:"serializer:json" json:"snapshot"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// TableName keeps the table name stable across gorm naming changes.
func (SnapshotRecord) TableName() string { return "cart_snapshots" }

// GORMStorage persists snapshots to Postgres via gorm.
type GORMStorage struct {
	db *gorm.DB
}

// NewGORMStorage migrates the snapshot table and returns the adapter.
func NewGORMStorage(db *gorm.DB) (*GORMStorage, error) {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart snapshots: %v", err)
	}
	return &GORMStorage{db: db}, nil
}

func (s *GORMStorage) Load(cartKey string) (models.CartSnapshot, error) {
	var rec SnapshotRecord
	err := s.db.Where("cart_key = ?", cartKey).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartSnapshot{Version: models.SnapshotVersion}, nil
		}
		return models.CartSnapshot{Version: models.SnapshotVersion}, fmt.Errorf("failed to load cart snapshot: %v", err)
	}
	return rec.Snapshot, nil
}

func (s *GORMStorage) Save(cartKey string, snapshot models.CartSnapshot) error {
	rec := SnapshotRecord{CartKey: cartKey, Snapshot: snapshot}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cart_key"}},
		UpdateAll: true,
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save cart snapshot: %v", err)
	}
	return nil
}
