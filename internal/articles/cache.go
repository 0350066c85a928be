package articles

import (
	"context"
	"log/slog"

	"github.com/conorfennell/wiederholung/internal/storage"
)

// Cached serves lookups from a sqlite cache and stores successful lookups of
// the wrapped Lookuper. Failures are never cached.
type Cached struct {
	next   Lookuper
	db     *storage.DB
	logger *slog.Logger
}

// NewCached wraps next with the cache in db.
func NewCached(next Lookuper, db *storage.DB, logger *slog.Logger) *Cached {
	return &Cached{next: next, db: db, logger: logger}
}

func (c *Cached) Lookup(ctx context.Context, word string) (string, error) {
	hit, err := c.db.FindLookup(ctx, word)
	if err != nil {
		c.logger.Warn("cache read failed", "word", word, "error", err)
	} else if hit != nil {
		c.logger.Debug("cache hit", "word", word)
		return hit.Entry, nil
	}

	entry, err := c.next.Lookup(ctx, word)
	if err != nil {
		return "", err
	}
	if err := c.db.SaveLookup(ctx, word, entry); err != nil {
		c.logger.Warn("cache write failed", "word", word, "error", err)
	}
	return entry, nil
}
