package catalog

import "time"

// Store backend names accepted by Config.Store.
const (
	StoreFile   = "file"
	StoreObject = "object"
	StoreDB     = "db"
)

// Config holds configuration for the catalog store and cache.
type Config struct {
	// Store selects the backend (file, object, db).
	Store string `mapstructure:"store" default:"file"`
	// Path is the catalog file path for the file backend.
	Path string `mapstructure:"path" default:"catalog.json"`
	// Object is the object name for the object-storage backend.
	Object string `mapstructure:"object" default:"gamedata/catalog.json"`
	// CacheTTLSeconds is the recipe cache time-to-live in seconds.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// IsValidStore checks if the configured backend is valid.
func (c Config) IsValidStore() bool {
	switch c.Store {
	case StoreFile, StoreObject, StoreDB:
		return true
	default:
		return false
	}
}

// TTL returns the cache TTL, falling back to the 60s default for
// non-positive values.
func (c Config) TTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return DefaultTTL
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
