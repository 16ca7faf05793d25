// Package cacherepo persists session cache entries in PostgreSQL.
// Each entry is one row keyed by the cache key; values are stored verbatim.
package cacherepo

import "time"

// SessionCacheEntryDTO is one session cache row.
type SessionCacheEntryDTO struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default to "session_cache_entries".
func (SessionCacheEntryDTO) TableName() string {
	return "session_cache_entries"
}
