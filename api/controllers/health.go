package controllers

import (
	"net/http"
	"os"

	"github.com/angelmondragon/warehouse-optimizer/api/responses"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Warehouse-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady also reports whether a results file exists yet, so the
// dashboard can tell an idle deployment from a broken one.
func HealthReady(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Warehouse-Env", cfg.App.Env)

		hasResults := false
		if _, err := os.Stat(cfg.Analysis.OutputPath); err == nil {
			hasResults = true
		}

		responses.WriteSuccess(w, map[string]any{
			"status":      "ready",
			"has_results": hasResults,
		})
	}
}
