package cart

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRecord is the single durable slot a session's cart serializes
// into, one row per session key.
type SnapshotRecord struct {
	Key       string    `gorm:"primaryKey"      json:"key"`
	Payload   []byte    `gorm:"not null"        json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SnapshotRecord) TableName() string {
	return "cart_snapshots"
}

// GormSnapshots stores snapshots in the embedded database.
type GormSnapshots struct {
	DB *gorm.DB
}

func (r *GormSnapshots) Save(ctx context.Context, key string, payload []byte) error {
	rec := SnapshotRecord{Key: key, Payload: payload}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
}

func (r *GormSnapshots) Load(ctx context.Context, key string) ([]byte, error) {
	var rec SnapshotRecord
	if err := r.DB.WithContext(ctx).Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec.Payload, nil
}
