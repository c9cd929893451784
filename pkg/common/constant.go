package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyIOTApiBaseURL   string = "IOT_API_BASE_URL"
	EnvKeyIOTStreamURL    string = "IOT_STREAM_URL"
	EnvKeyIOTAuthToken    string = "IOT_AUTH_TOKEN"
	EnvKeyIOTHttpHostPort string = "IOT_HTTP_HOST_PORT"

	EnvKeyIOTLedgerStore string = "IOT_LEDGER_STORE"
	EnvKeyIOTDbPath      string = "IOT_DB_PATH"
	EnvKeyIOTLedgerFile  string = "IOT_LEDGER_FILE"
	EnvKeyIOTLogDir      string = "IOT_LOG_DIR"

	EnvKeyIOTWarningThreshold string = "IOT_WARNING_THRESHOLD"
	EnvKeyIOTRefreshInterval  string = "IOT_REFRESH_INTERVAL"
	EnvKeyIOTRequestTimeout   string = "IOT_REQUEST_TIMEOUT"

	EnvKeyIOTDefaultRate  string = "IOT_DEFAULT_RATE"
	EnvKeyIOTDefaultBurst string = "IOT_DEFAULT_BURST"

	LedgerStorageKey string = "@warnings"

	DefaultWarningThreshold float64 = 800
	DangerousThreshold      float64 = 1000

	LoggerNameIOTCore       string = "iot_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameLiveFeed      string = "live_feed"
	LoggerNameApiClient     string = "api_client"
	LoggerNameStore         string = "store"
	LoggerFieldIOTCategory  string = "category"

	LoggerCategoryIOTInventory string = "inventory"
	LoggerCategoryIOTLedger    string = "ledger"
	LoggerCategoryIOTMerger    string = "merger"
	LoggerCategoryIOTHistory   string = "history"
)
