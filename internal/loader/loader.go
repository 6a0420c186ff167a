package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/solidview/internal/principles"
)

// ErrLoad reports that the document batch could not be loaded.
var ErrLoad = errors.New("loading documents")

// Load fetches every catalog document from src concurrently and returns the
// complete collection. The batch is all-or-nothing: the first failure
// cancels the remaining fetches and no partial collection is returned.
func Load(ctx context.Context, src Source, logger *slog.Logger) (*principles.Collection, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	var (
		mu   sync.Mutex
		docs = make(map[principles.ID][]byte)
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range principles.Catalog() {
		g.Go(func() error {
			data, err := src.Fetch(gctx, p.Path)
			if err != nil {
				return fmt.Errorf("%s (%s): %w", p.ID, p.Path, err)
			}
			logger.Debug("fetched document", "principle", p.ID, "path", p.Path, "bytes", len(data))

			mu.Lock()
			docs[p.ID] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	c, err := principles.NewCollection(docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	logger.Info("documents loaded", "count", c.Len(), "duration", time.Since(start))
	return c, nil
}
