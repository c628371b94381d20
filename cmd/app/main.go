package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/chronotree/internal"
	pkgconfig "github.com/starford/chronotree/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if configPath := cmd.String("config"); configPath != "" {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected arguments: CHERRYTREE_DB OUTPUT_DIR")
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithSource(cmd.Args().Get(0)),
		internal.WithOutputDir(cmd.Args().Get(1)),
		internal.WithStrategy(cmd.String("strategy")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "chronotree",
		Usage:     "Replay a CherryTree notes database as a git history, one commit per recorded edit",
		ArgsUsage: "CHERRYTREE_DB OUTPUT_DIR",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (defaults apply when omitted)",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "Conversion strategy",
				Value: internal.StrategyOneFile,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
