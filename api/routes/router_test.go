package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	"github.com/angelmondragon/warehouse-optimizer/pkg/logger"
	"github.com/angelmondragon/warehouse-optimizer/pkg/metrics"
)

type nullWriter struct{}

func (*nullWriter) Write(p []byte) (int, error) { return len(p), nil }

const testCatalog = `[
	{"sku": "SKU-3", "product_name": "High", "frequency": 100, "category": "x",
	 "dimensions_cm": {"length": 1, "width": 1, "height": 1}, "weight_kg": 1, "unit_cost": 10},
	{"sku": "SKU-1", "product_name": "Mid", "frequency": 50, "category": "x",
	 "dimensions_cm": {"length": 1, "width": 1, "height": 1}, "weight_kg": 1, "unit_cost": 5},
	{"sku": "SKU-2", "product_name": "Low", "frequency": 10, "category": "x",
	 "dimensions_cm": {"length": 1, "width": 1, "height": 1}, "weight_kg": 1, "unit_cost": 1}
]`

func testServer(t *testing.T) (*httptest.Server, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(testCatalog), 0o644))

	cfg := &config.Config{
		App: config.AppConfig{Env: "dev", Port: "0"},
		Analysis: config.AnalysisConfig{
			InputPath:  inputPath,
			OutputPath: filepath.Join(dir, "results.json"),
			AThreshold: 0.80, BThreshold: 0.95,
			ZoneADistanceM: 5, ZoneBDistanceM: 15, ZoneCDistanceM: 30,
			WalkingSpeedMPS: 1.2, LaborCostPerHour: 22.50,
			CostPerOrder: 50, HoldingCostRate: 0.15,
			ServiceLevelZ: 1.645, LeadTimeDays: 7, VariabilityFactor: 0.2,
		},
		Dashboard: config.DashboardConfig{StaticDir: dir},
	}

	logg := logger.New(logger.Options{ServiceName: "test", Output: &nullWriter{}})
	registry := prometheus.NewRegistry()
	handler := NewRouter(cfg, logg, metrics.NewPipelineMetrics(registry), registry)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, cfg
}

func TestHealthLive(t *testing.T) {
	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/health/live")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Warehouse-Env"))
}

func TestReportNotFoundBeforeFirstRun(t *testing.T) {
	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/v1/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestAnalyzeThenReport(t *testing.T) {
	server, cfg := testServer(t)

	resp, err := http.Post(server.URL+"/api/v1/analyze", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Stage    string `json:"stage"`
			Products int    `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "persisted", envelope.Data.Stage)
	require.Equal(t, 3, envelope.Data.Products)

	_, err = os.Stat(cfg.Analysis.OutputPath)
	require.NoError(t, err)

	reportResp, err := http.Get(server.URL + "/api/v1/report")
	require.NoError(t, err)
	defer reportResp.Body.Close()
	require.Equal(t, http.StatusOK, reportResp.StatusCode)

	var doc map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(reportResp.Body).Decode(&doc))
	for _, key := range []string{"metrics", "abc_analysis", "inventory_metrics", "layouts"} {
		require.Contains(t, doc, key)
	}
}

func TestAnalyzeRejectsInvalidOverrides(t *testing.T) {
	server, _ := testServer(t)

	body := `{"a_threshold": 1.5}`
	resp, err := http.Post(server.URL+"/api/v1/analyze", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Details any    `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestAnalyzeRejectsInvertedThresholdOverrides(t *testing.T) {
	server, _ := testServer(t)

	body := `{"a_threshold": 0.9, "b_threshold": 0.5}`
	resp, err := http.Post(server.URL+"/api/v1/analyze", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeSurfacesDegenerateInput(t *testing.T) {
	server, cfg := testServer(t)

	degenerate := `[{"sku": "SKU-0", "product_name": "Idle", "frequency": 0, "category": "x",
		"dimensions_cm": {"length": 1, "width": 1, "height": 1}, "weight_kg": 1, "unit_cost": 10}]`
	path := filepath.Join(filepath.Dir(cfg.Analysis.InputPath), "degenerate.json")
	require.NoError(t, os.WriteFile(path, []byte(degenerate), 0o644))

	body := `{"input_path": ` + quoteJSON(path) + `}`
	resp, err := http.Post(server.URL+"/api/v1/analyze", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "DEGENERATE_INPUT", envelope.Error.Code)
}

func quoteJSON(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}
