package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/checkball/checkball/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	CacheEnabled               bool
	CacheTTL                   time.Duration
	CacheMaxEntries            int
	ESPNBaseURL                string
	ESPNScoreboardTimeout      time.Duration
	ESPNSummaryTimeout         time.Duration
	ESPNMaxAttempts            int
	ESPNCircuitEnabled         bool
	ESPNCircuitFailureCount    int
	ESPNCircuitOpenTimeout     time.Duration
	ESPNCircuitHalfOpenMaxReq  int
	RateLimitEnabled           bool
	RateLimitTeamsPerMin       int
	RateLimitScoresPerMin      int
	RateLimitDetailsPerMin     int
	RateLimitSaveConfigPerMin  int
	RateLimitLoadConfigPerMin  int
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cacheMaxEntries, err := getEnvAsInt("CACHE_MAX_ENTRIES", 1000)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cacheMaxEntries < 1 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be >= 1")
	}

	espnScoreboardTimeout, err := time.ParseDuration(getEnv("ESPN_SCOREBOARD_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_SCOREBOARD_TIMEOUT: %w", err)
	}
	if espnScoreboardTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_SCOREBOARD_TIMEOUT must be > 0")
	}
	espnSummaryTimeout, err := time.ParseDuration(getEnv("ESPN_SUMMARY_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_SUMMARY_TIMEOUT: %w", err)
	}
	if espnSummaryTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_SUMMARY_TIMEOUT must be > 0")
	}
	espnMaxAttempts, err := getEnvAsInt("ESPN_MAX_ATTEMPTS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_MAX_ATTEMPTS: %w", err)
	}
	if espnMaxAttempts < 1 {
		return Config{}, fmt.Errorf("ESPN_MAX_ATTEMPTS must be >= 1")
	}
	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}
	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if espnCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	espnCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESPN_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if espnCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	espnCircuitHalfOpenMaxReq, err := getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if espnCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	rateLimitEnabled, err := strconv.ParseBool(getEnv("RATE_LIMIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_ENABLED: %w", err)
	}
	rateLimitTeams, err := getEnvAsInt("RATE_LIMIT_TEAMS_PER_MIN", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_TEAMS_PER_MIN: %w", err)
	}
	rateLimitScores, err := getEnvAsInt("RATE_LIMIT_SCORES_PER_MIN", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_SCORES_PER_MIN: %w", err)
	}
	rateLimitDetails, err := getEnvAsInt("RATE_LIMIT_DETAILS_PER_MIN", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_DETAILS_PER_MIN: %w", err)
	}
	rateLimitSaveConfig, err := getEnvAsInt("RATE_LIMIT_SAVE_CONFIG_PER_MIN", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_SAVE_CONFIG_PER_MIN: %w", err)
	}
	rateLimitLoadConfig, err := getEnvAsInt("RATE_LIMIT_LOAD_CONFIG_PER_MIN", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_LOAD_CONFIG_PER_MIN: %w", err)
	}
	for _, limit := range []int{rateLimitTeams, rateLimitScores, rateLimitDetails, rateLimitSaveConfig, rateLimitLoadConfig} {
		if limit < 1 {
			return Config{}, fmt.Errorf("rate limit budgets must be >= 1")
		}
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "checkball-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		CacheMaxEntries:            cacheMaxEntries,
		ESPNBaseURL:                strings.TrimSpace(getEnv("ESPN_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports")),
		ESPNScoreboardTimeout:      espnScoreboardTimeout,
		ESPNSummaryTimeout:         espnSummaryTimeout,
		ESPNMaxAttempts:            espnMaxAttempts,
		ESPNCircuitEnabled:         espnCircuitEnabled,
		ESPNCircuitFailureCount:    espnCircuitFailureCount,
		ESPNCircuitOpenTimeout:     espnCircuitOpenTimeout,
		ESPNCircuitHalfOpenMaxReq:  espnCircuitHalfOpenMaxReq,
		RateLimitEnabled:           rateLimitEnabled,
		RateLimitTeamsPerMin:       rateLimitTeams,
		RateLimitScoresPerMin:      rateLimitScores,
		RateLimitDetailsPerMin:     rateLimitDetails,
		RateLimitSaveConfigPerMin:  rateLimitSaveConfig,
		RateLimitLoadConfigPerMin:  rateLimitLoadConfig,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.ESPNBaseURL == "" {
		return Config{}, fmt.Errorf("ESPN_BASE_URL cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
