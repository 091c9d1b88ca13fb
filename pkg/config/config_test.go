package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Analysis.OutputPath != "warehouse_analysis_results.json" {
		t.Fatalf("unexpected default output path: %q", cfg.Analysis.OutputPath)
	}
	if cfg.Analysis.AThreshold != 0.80 || cfg.Analysis.BThreshold != 0.95 {
		t.Fatalf("unexpected default thresholds: %v / %v", cfg.Analysis.AThreshold, cfg.Analysis.BThreshold)
	}
	if cfg.Analysis.ZoneADistanceM != 5 || cfg.Analysis.ZoneBDistanceM != 15 || cfg.Analysis.ZoneCDistanceM != 30 {
		t.Fatalf("unexpected default zone distances: %v / %v / %v",
			cfg.Analysis.ZoneADistanceM, cfg.Analysis.ZoneBDistanceM, cfg.Analysis.ZoneCDistanceM)
	}
	if cfg.Analysis.WalkingSpeedMPS != 1.2 {
		t.Fatalf("unexpected walking speed: %v", cfg.Analysis.WalkingSpeedMPS)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAThreshold, "0.70")
	t.Setenv(EnvBThreshold, "0.90")
	t.Setenv(EnvInputPath, "catalog.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Analysis.AThreshold != 0.70 || cfg.Analysis.BThreshold != 0.90 {
		t.Fatalf("overrides not applied: %v / %v", cfg.Analysis.AThreshold, cfg.Analysis.BThreshold)
	}
	if cfg.Analysis.InputPath != "catalog.json" {
		t.Fatalf("unexpected input path: %q", cfg.Analysis.InputPath)
	}
}

func TestLoad_RejectsInvertedThresholds(t *testing.T) {
	t.Setenv(EnvAThreshold, "0.95")
	t.Setenv(EnvBThreshold, "0.80")

	if _, err := Load(); err == nil {
		t.Fatal("expected inverted thresholds to fail validation")
	}
}

func TestLoad_RejectsZeroWalkingSpeed(t *testing.T) {
	t.Setenv("WAREHOUSE_WALKING_SPEED_MPS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected zero walking speed to fail validation")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
