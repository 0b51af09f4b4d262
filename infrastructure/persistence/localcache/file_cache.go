package localcache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"sikdan-backend/domain/core/entities"
)

// FileCache stores the full record list as one JSON document at
// <dataDir>/<key>.json, overwritten wholesale on every write. It is
// the durable backstop when the remote backend is unreachable.
type FileCache struct {
	path   string
	logger *zap.Logger
}

// NewFileCache creates a file cache for the given data directory and
// fixed cache key
func NewFileCache(dataDir, key string, logger *zap.Logger) *FileCache {
	return &FileCache{
		path:   filepath.Join(dataDir, key+".json"),
		logger: logger,
	}
}

// ReadAll returns the cached record list. A missing file or corrupt
// payload is logged and degrades to an empty list; the caller never
// sees an error from this path.
func (c *FileCache) ReadAll() []entities.MealRecord {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("failed to read local cache", zap.String("path", c.path), zap.Error(err))
		}
		return nil
	}

	var records []entities.MealRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt cache counts as no data
		c.logger.Warn("local cache is corrupt, treating as empty", zap.String("path", c.path), zap.Error(err))
		return nil
	}
	return records
}

// WriteAll overwrites the cache wholesale via a temp file and rename,
// so a crashed write never leaves a half-written document behind
func (c *FileCache) WriteAll(records []entities.MealRecord) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

// Delete removes the cache entry; a missing entry is not an error
func (c *FileCache) Delete() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
