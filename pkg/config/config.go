package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Analysis  AnalysisConfig
	Dashboard DashboardConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WAREHOUSE_APP_ENV" default:"dev"`
	Port         string `envconfig:"WAREHOUSE_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"WAREHOUSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WAREHOUSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// AnalysisConfig carries every tunable the optimizer uses. Defaults mirror
// the reference scenario: a mid-size warehouse with manual picking.
type AnalysisConfig struct {
	InputPath  string `envconfig:"WAREHOUSE_INPUT_PATH" default:"real_world_product_data.json"`
	OutputPath string `envconfig:"WAREHOUSE_OUTPUT_PATH" default:"warehouse_analysis_results.json"`

	// ABC classification thresholds on cumulative frequency share.
	AThreshold float64 `envconfig:"WAREHOUSE_ABC_A_THRESHOLD" default:"0.80" validate:"gt=0,lt=1"`
	BThreshold float64 `envconfig:"WAREHOUSE_ABC_B_THRESHOLD" default:"0.95" validate:"gt=0,lte=1,gtfield=AThreshold"`

	// Average round-trip distance from dock to zone, in meters.
	ZoneADistanceM float64 `envconfig:"WAREHOUSE_ZONE_A_DISTANCE_M" default:"5" validate:"gt=0"`
	ZoneBDistanceM float64 `envconfig:"WAREHOUSE_ZONE_B_DISTANCE_M" default:"15" validate:"gt=0"`
	ZoneCDistanceM float64 `envconfig:"WAREHOUSE_ZONE_C_DISTANCE_M" default:"30" validate:"gt=0"`

	WalkingSpeedMPS  float64 `envconfig:"WAREHOUSE_WALKING_SPEED_MPS" default:"1.2" validate:"gt=0"`
	LaborCostPerHour float64 `envconfig:"WAREHOUSE_LABOR_COST_PER_HOUR" default:"22.50" validate:"gte=0"`

	// Inventory policy inputs for EOQ and safety stock.
	CostPerOrder      float64 `envconfig:"WAREHOUSE_COST_PER_ORDER" default:"50" validate:"gte=0"`
	HoldingCostRate   float64 `envconfig:"WAREHOUSE_HOLDING_COST_RATE" default:"0.15" validate:"gte=0"`
	ServiceLevelZ     float64 `envconfig:"WAREHOUSE_SERVICE_LEVEL_Z" default:"1.645" validate:"gte=0"`
	LeadTimeDays      float64 `envconfig:"WAREHOUSE_LEAD_TIME_DAYS" default:"7" validate:"gt=0"`
	VariabilityFactor float64 `envconfig:"WAREHOUSE_DEMAND_VARIABILITY" default:"0.2" validate:"gte=0"`
}

type DashboardConfig struct {
	StaticDir string `envconfig:"WAREHOUSE_DASHBOARD_STATIC_DIR" default:"web"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Validate rejects parameter combinations the optimizer cannot work with,
// such as inverted ABC thresholds or a zero walking speed.
func (a AnalysisConfig) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid analysis parameters: %w", err)
	}
	return nil
}
