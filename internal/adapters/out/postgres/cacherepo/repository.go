package cacherepo

import (
	"context"
	"errors"
	"strings"

	"deliverydesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionCache implements ports.SessionCache on top of a GORM connection,
// which may be a transaction.
type GormSessionCache struct {
	db      *gorm.DB
	tracker entryTracker
}

// entryTracker records the keys written through the cache.
type entryTracker interface {
	TrackEntry(key string)
}

// NewGormSessionCache creates a session cache over db.
func NewGormSessionCache(db *gorm.DB, tracker entryTracker) *GormSessionCache {
	return &GormSessionCache{
		db:      db,
		tracker: tracker,
	}
}

// Get returns the value stored under key.
func (c *GormSessionCache) Get(ctx context.Context, key string) (string, bool, error) {
	var dto SessionCacheEntryDTO
	err := c.db.WithContext(ctx).Where("key = ?", key).Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return dto.Value, true, nil
}

// Set upserts value under key.
func (c *GormSessionCache) Set(ctx context.Context, key string, value string) error {
	if strings.TrimSpace(key) == "" {
		return errs.NewValueIsRequiredError("key")
	}

	dto := SessionCacheEntryDTO{Key: key, Value: value}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	c.tracker.TrackEntry(key)
	return nil
}
