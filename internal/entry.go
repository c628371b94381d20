package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/starford/chronotree/internal/apperr"
	"github.com/starford/chronotree/internal/catalog"
	"github.com/starford/chronotree/internal/checksum"
	"github.com/starford/chronotree/internal/gitsink"
	"github.com/starford/chronotree/internal/outline"
	"github.com/starford/chronotree/internal/source"
	"github.com/starford/chronotree/internal/timeline"
)

// Run executes one conversion with the given options: load the source tree,
// flatten it, reconstruct the editing timeline, and commit every snapshot
// into a fresh git repository. The run walks the whole timeline to
// completion; a failure partway leaves the output repository partially
// populated, which is accepted.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		strategy: StrategyOneFile,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.sourcePath == "" {
		return fmt.Errorf("source path is required")
	}
	if app.outputDir == "" {
		return fmt.Errorf("output dir is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("source", app.sourcePath),
		slog.String("output_dir", app.outputDir),
		slog.String("document", cfg.Document.Name),
		slog.String("strategy", app.strategy),
		slog.String("log_level", cfg.App.LogLevel.String()))

	if app.strategy != StrategyOneFile {
		return fmt.Errorf("strategy %q: %w", app.strategy, apperr.ErrUnknownStrategy)
	}

	zone, err := cfg.Document.Zone()
	if err != nil {
		return fmt.Errorf("document config: %w", err)
	}

	root, err := source.Load(app.sourcePath)
	if err != nil {
		return fmt.Errorf("load source tree: %w", err)
	}

	now := app.now()
	nodes := outline.Flatten(root, now)
	logger.Info("Flattened source tree", slog.Int("nodes", len(nodes)))

	repo, err := gitsink.Init(gitsink.Params{
		Dir:         app.outputDir,
		Document:    cfg.Document.Name,
		AuthorName:  cfg.Document.AuthorName,
		AuthorEmail: cfg.Document.AuthorEmail,
		Zone:        zone,
	}, now)
	if err != nil {
		return fmt.Errorf("bootstrap output repo: %w", err)
	}

	var cat catalog.Log
	if cfg.Catalog.Enabled() {
		db, err := catalog.Open(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer db.Close()
		cat = db
	}

	start := time.Now()
	entries := timeline.Entries(nodes)
	for _, entry := range entries {
		message := entry.Description + entry.Node.Name
		content := []byte(strings.Join(entry.Render(), ""))

		hash, err := repo.Commit(message, entry.Time, content)
		if err != nil {
			return fmt.Errorf("commit %q: %w", message, err)
		}
		logger.Debug("committed entry",
			slog.String("message", message),
			slog.Time("author_at", entry.Time),
			slog.String("hash", hash))

		if cat != nil {
			row := catalog.Row{
				Hash:     hash,
				Message:  message,
				NodeName: entry.Node.Name,
				AuthorAt: entry.Time,
				Checksum: checksum.Sum(content),
			}
			if err := cat.Record(row); err != nil {
				return fmt.Errorf("record commit %q: %w", message, err)
			}
		}
	}

	logger.Info("Conversion complete",
		slog.Int("commits", len(entries)),
		slog.Duration("duration", time.Since(start)))
	return nil
}
