package vector

import (
	"context"
	"log/slog"
)

var logger = slog.New(slog.DiscardHandler)

// SetLogger installs l as the destination for the package's debug events
// (buffer reallocations). A nil l restores the default, which discards
// everything. SetLogger is not safe to call concurrently with vector
// operations.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

func logRealloc(oldCap, newCap, size int) {
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "vector reallocated",
		slog.Int("old_capacity", oldCap),
		slog.Int("new_capacity", newCap),
		slog.Int("size", size),
	)
}
