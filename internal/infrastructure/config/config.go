package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the vitals risk service.
type Config struct {
	GRPCPort      string
	HTTPPort      string
	DatabaseURL   string
	MigrationsDir string
	KafkaBrokers  []string
	EventsTopic   string
	ArtifactDir   string
	Environment   string
	LogLevel      string
	LogFormat     string
	OTLPEndpoint  string
	TLSCertFile   string
	TLSKeyFile    string
	Reflection    bool

	// HTTPRateLimit is the sustained API request rate per second. Zero disables limiting.
	HTTPRateLimit float64
}

// Load reads configuration from environment variables with sensible defaults.
// An empty DATABASE_URL or KAFKA_BROKERS disables the corresponding adapter.
func Load() *Config {
	return &Config{
		GRPCPort:      getEnv("GRPC_PORT", "8090"),
		HTTPPort:      getEnv("HTTP_PORT", "9090"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "file://migrations"),
		KafkaBrokers:  splitList(getEnv("KAFKA_BROKERS", "")),
		EventsTopic:   getEnv("EVENTS_TOPIC", "vitals.risk.events"),
		ArtifactDir:   getEnv("RISK_ARTIFACT_DIR", "./ml"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		OTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		TLSCertFile:   getEnv("GRPC_TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("GRPC_TLS_KEY_FILE", ""),
		Reflection:    getBool("GRPC_REFLECTION", false),
		HTTPRateLimit: getFloat("HTTP_RATE_LIMIT", 0),
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// TLSEnabled reports whether both halves of the gRPC key pair are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil || f < 0 {
		return defaultValue
	}
	return f
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
