package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/warehouse-optimizer/internal/pipeline"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	"github.com/angelmondragon/warehouse-optimizer/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "analyze"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "analyze",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// An explicit path on the command line beats the configured one.
	if len(os.Args) > 1 && os.Args[1] != "" {
		cfg.Analysis.InputPath = os.Args[1]
	}

	runner, err := pipeline.New(pipeline.Params{
		Config: cfg.Analysis,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build pipeline", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"input_path":  cfg.Analysis.InputPath,
		"output_path": cfg.Analysis.OutputPath,
	})
	logg.Info(ctx, "starting warehouse analysis")

	result, err := runner.Run(ctx)
	if err != nil {
		logg.Error(ctx, "analysis failed", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "products", result.Products)
	logg.Info(ctx, "analysis complete, results saved")
}
