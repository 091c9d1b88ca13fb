package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/warehouse-optimizer/api/controllers"
	"github.com/angelmondragon/warehouse-optimizer/api/middleware"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	"github.com/angelmondragon/warehouse-optimizer/pkg/logger"
	"github.com/angelmondragon/warehouse-optimizer/pkg/metrics"
)

// NewRouter wires the dashboard surface: health probes, the results report,
// on-demand analysis, prometheus metrics and the static dashboard page.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	pipelineMetrics *metrics.PipelineMetrics,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", controllers.GetReport(cfg, logg))
		r.Post("/analyze", controllers.Analyze(cfg, logg, pipelineMetrics))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Handle("/*", http.FileServer(http.Dir(cfg.Dashboard.StaticDir)))

	return r
}
