package startup

import (
	"os"
	"runtime"
	"strings"

	"tracklist/internal/logging"
	"tracklist/internal/seqlist"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration
type Config struct {
	Port            string
	MetricsEnabled  bool
	PositionPolicy  seqlist.Policy
	LogHealthChecks bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	port := getEnv("PORT", "8080")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	policyStr := getEnv("POSITION_POLICY", "clamp")
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)

	policy, err := seqlist.ParsePolicy(policyStr)
	if err != nil {
		logging.Warn("  Invalid POSITION_POLICY %q, using default: clamp", policyStr)
		policy = seqlist.ClampToEnd
	}

	logging.Info("  PORT:              %s", port)
	logging.Info("  METRICS_ENABLED:   %v", metricsEnabled)
	logging.Info("  POSITION_POLICY:   %s", policy)
	logging.Info("  LOG_HEALTH_CHECKS: %v", logHealthChecks)
	logging.Info("  LOG_LEVEL:         %s", logging.GetLevel())

	return &Config{
		Port:            port,
		MetricsEnabled:  metricsEnabled,
		PositionPolicy:  policy,
		LogHealthChecks: logHealthChecks,
	}, nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a bool or a default
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		logging.Warn("  Invalid boolean for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
}
