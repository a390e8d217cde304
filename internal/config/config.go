package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eclipsedgg/raidboard/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	// DataDir backs the JSON file store. DBURL switches persistence to
	// postgres when set.
	DataDir                 string
	DBURL                   string
	DBDisablePreparedBinary bool

	CORSAllowedOrigins []string
	SyncToken          string

	GuildName   string
	GuildRealm  string
	GuildRegion string

	WarcraftLogsGuildID             string
	WarcraftLogsBaseURL             string
	WarcraftLogsTimeout             time.Duration
	WarcraftLogsMaxRetries          int
	WarcraftLogsCircuitEnabled      bool
	WarcraftLogsCircuitFailureCount int
	WarcraftLogsCircuitOpenTimeout  time.Duration
	WarcraftLogsCircuitHalfOpenMax  int

	BlizzardEnabled      bool
	BlizzardClientID     string
	BlizzardClientSecret string
	BlizzardLocale       string
	BlizzardTimeout      time.Duration

	RaiderIOBaseURL  string
	RaiderIORaidSlug string
	RaiderIOLimit    int
	RaiderIOTimeout  time.Duration

	ApplicantsSheetURL string
	ApplicantsTimeout  time.Duration

	SyncBatchSize  int
	SyncBatchDelay time.Duration

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	UptraceCaptureRequestBody  bool
	UptraceRequestBodyMaxBytes int

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
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
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofAddr == "" {
		pprofAddr = ":6060"
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

	warcraftLogsTimeout, err := time.ParseDuration(getEnv("WARCRAFTLOGS_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARCRAFTLOGS_TIMEOUT: %w", err)
	}
	if warcraftLogsTimeout <= 0 {
		return Config{}, fmt.Errorf("WARCRAFTLOGS_TIMEOUT must be > 0")
	}
	warcraftLogsMaxRetries, err := getEnvAsInt("WARCRAFTLOGS_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARCRAFTLOGS_MAX_RETRIES: %w", err)
	}
	if warcraftLogsMaxRetries < 0 {
		return Config{}, fmt.Errorf("WARCRAFTLOGS_MAX_RETRIES must be >= 0")
	}
	warcraftLogsCircuitEnabled, err := strconv.ParseBool(getEnv("WARCRAFTLOGS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARCRAFTLOGS_CIRCUIT_ENABLED: %w", err)
	}
	warcraftLogsCircuitFailureCount, err := getEnvAsInt("WARCRAFTLOGS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARCRAFTLOGS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if warcraftLogsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("WARCRAFTLOGS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	warcraftLogsCircuitOpenTimeout, err := time.ParseDuration(getEnv("WARCRAFTLOGS_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARCRAFTLOGS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if warcraftLogsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("WARCRAFTLOGS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	warcraftLogsCircuitHalfOpenMax, err := getEnvAsInt("WARCRAFTLOGS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARCRAFTLOGS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if warcraftLogsCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("WARCRAFTLOGS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	blizzardEnabled, err := strconv.ParseBool(getEnv("BLIZZARD_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BLIZZARD_ENABLED: %w", err)
	}
	blizzardClientID := strings.TrimSpace(getEnv("BLIZZARD_CLIENT_ID", ""))
	blizzardClientSecret := strings.TrimSpace(getEnv("BLIZZARD_CLIENT_SECRET", ""))
	if blizzardEnabled {
		if blizzardClientID == "" {
			return Config{}, fmt.Errorf("BLIZZARD_CLIENT_ID is required when BLIZZARD_ENABLED=true")
		}
		if blizzardClientSecret == "" {
			return Config{}, fmt.Errorf("BLIZZARD_CLIENT_SECRET is required when BLIZZARD_ENABLED=true")
		}
	}
	blizzardTimeout, err := time.ParseDuration(getEnv("BLIZZARD_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BLIZZARD_TIMEOUT: %w", err)
	}
	if blizzardTimeout <= 0 {
		return Config{}, fmt.Errorf("BLIZZARD_TIMEOUT must be > 0")
	}

	raiderIOLimit, err := getEnvAsInt("RAIDERIO_LIMIT", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse RAIDERIO_LIMIT: %w", err)
	}
	if raiderIOLimit < 1 {
		return Config{}, fmt.Errorf("RAIDERIO_LIMIT must be >= 1")
	}
	raiderIOTimeout, err := time.ParseDuration(getEnv("RAIDERIO_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RAIDERIO_TIMEOUT: %w", err)
	}
	if raiderIOTimeout <= 0 {
		return Config{}, fmt.Errorf("RAIDERIO_TIMEOUT must be > 0")
	}

	applicantsTimeout, err := time.ParseDuration(getEnv("APPLICANTS_SHEET_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APPLICANTS_SHEET_TIMEOUT: %w", err)
	}
	if applicantsTimeout <= 0 {
		return Config{}, fmt.Errorf("APPLICANTS_SHEET_TIMEOUT must be > 0")
	}

	syncBatchSize, err := getEnvAsInt("SYNC_BATCH_SIZE", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_BATCH_SIZE: %w", err)
	}
	if syncBatchSize < 1 {
		return Config{}, fmt.Errorf("SYNC_BATCH_SIZE must be >= 1")
	}
	syncBatchDelay, err := time.ParseDuration(getEnv("SYNC_BATCH_DELAY", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_BATCH_DELAY: %w", err)
	}
	if syncBatchDelay < 0 {
		return Config{}, fmt.Errorf("SYNC_BATCH_DELAY must be >= 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg := Config{
		AppEnv:                          appEnv,
		ServiceName:                     getEnv("APP_SERVICE_NAME", "raidboard-api"),
		ServiceVersion:                  getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                        getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                     readTimeout,
		WriteTimeout:                    writeTimeout,
		LogLevel:                        parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DataDir:                         getEnv("DATA_DIR", "./data"),
		DBURL:                           strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:         dbDisablePreparedBinary,
		CORSAllowedOrigins:              splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SyncToken:                       strings.TrimSpace(getEnv("SYNC_TOKEN", "")),
		GuildName:                       strings.TrimSpace(getEnv("GUILD_NAME", "Eclipsed")),
		GuildRealm:                      strings.TrimSpace(getEnv("GUILD_REALM", "Stormrage")),
		GuildRegion:                     strings.ToLower(strings.TrimSpace(getEnv("GUILD_REGION", "us"))),
		WarcraftLogsGuildID:             strings.TrimSpace(getEnv("WARCRAFTLOGS_GUILD_ID", "")),
		WarcraftLogsBaseURL:             getEnv("WARCRAFTLOGS_BASE_URL", "https://www.warcraftlogs.com"),
		WarcraftLogsTimeout:             warcraftLogsTimeout,
		WarcraftLogsMaxRetries:          warcraftLogsMaxRetries,
		WarcraftLogsCircuitEnabled:      warcraftLogsCircuitEnabled,
		WarcraftLogsCircuitFailureCount: warcraftLogsCircuitFailureCount,
		WarcraftLogsCircuitOpenTimeout:  warcraftLogsCircuitOpenTimeout,
		WarcraftLogsCircuitHalfOpenMax:  warcraftLogsCircuitHalfOpenMax,
		BlizzardEnabled:                 blizzardEnabled,
		BlizzardClientID:                blizzardClientID,
		BlizzardClientSecret:            blizzardClientSecret,
		BlizzardLocale:                  getEnv("BLIZZARD_LOCALE", "en_US"),
		BlizzardTimeout:                 blizzardTimeout,
		RaiderIOBaseURL:                 getEnv("RAIDERIO_BASE_URL", "https://raider.io/api/v1"),
		RaiderIORaidSlug:                strings.TrimSpace(getEnv("RAIDERIO_RAID_SLUG", "")),
		RaiderIOLimit:                   raiderIOLimit,
		RaiderIOTimeout:                 raiderIOTimeout,
		ApplicantsSheetURL:              strings.TrimSpace(getEnv("APPLICANTS_SHEET_URL", "")),
		ApplicantsTimeout:               applicantsTimeout,
		SyncBatchSize:                   syncBatchSize,
		SyncBatchDelay:                  syncBatchDelay,
		PprofEnabled:                    pprofEnabled,
		PprofAddr:                       pprofAddr,
		UptraceEnabled:                  uptraceEnabled,
		UptraceDSN:                      uptraceDSN,
		UptraceLogsEnabled:              uptraceLogsEnabled,
		UptraceCaptureRequestBody:       uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes:      uptraceRequestBodyMaxBytes,
		PyroscopeEnabled:                pyroscopeEnabled,
		PyroscopeServerAddress:          pyroscopeServerAddress,
		PyroscopeAuthToken:              strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:          strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:             pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.GuildName == "" {
		return Config{}, fmt.Errorf("GUILD_NAME cannot be empty")
	}
	if cfg.GuildRealm == "" {
		return Config{}, fmt.Errorf("GUILD_REALM cannot be empty")
	}
	if cfg.GuildRegion == "" {
		return Config{}, fmt.Errorf("GUILD_REGION cannot be empty")
	}
	if cfg.AppEnv == EnvProd && cfg.SyncToken == "" {
		return Config{}, fmt.Errorf("SYNC_TOKEN is required in prod")
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
