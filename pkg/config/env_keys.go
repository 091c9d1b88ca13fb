package config

const EnvPrefix = "WAREHOUSE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, shared with tests and deployment manifests.
const (
	EnvAppEnv     = "WAREHOUSE_APP_ENV"
	EnvPort       = "WAREHOUSE_APP_PORT"
	EnvLogLevel   = "WAREHOUSE_LOG_LEVEL"
	EnvInputPath  = "WAREHOUSE_INPUT_PATH"
	EnvOutputPath = "WAREHOUSE_OUTPUT_PATH"
	EnvAThreshold = "WAREHOUSE_ABC_A_THRESHOLD"
	EnvBThreshold = "WAREHOUSE_ABC_B_THRESHOLD"
	EnvStaticDir  = "WAREHOUSE_DASHBOARD_STATIC_DIR"
)
