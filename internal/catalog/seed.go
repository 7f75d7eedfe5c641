package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m3rciful/trainbot/core/bootstrap"
	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/internal/models"
)

// CycleWriter persists catalog entries into the cycles table.
type CycleWriter interface {
	UpsertCycle(ctx context.Context, c models.Cycle) error
}

// Seeder mirrors the static catalog into storage at bootstrap so the web
// application can read cycles without linking this package.
func Seeder() bootstrap.Seeder {
	return bootstrap.SeederFunc(func(ctx context.Context, storage bootstrap.Storage) error {
		writer, ok := storage.(CycleWriter)
		if !ok {
			return fmt.Errorf("catalog: storage %T cannot persist cycles", storage)
		}
		for _, c := range cycles {
			if err := writer.UpsertCycle(ctx, c); err != nil {
				return fmt.Errorf("catalog: seed cycle %s: %w", c.Name, err)
			}
		}
		logger.Info(ctx, "db.seed", "catalog.seed",
			slog.String("status", "ok"),
			slog.Int("cycles", len(cycles)),
		)
		return nil
	})
}
