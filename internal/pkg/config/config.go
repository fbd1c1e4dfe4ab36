package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Location  LocationConfig  `mapstructure:"location"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type NATSConfig struct {
	URL string `mapstructure:"url"`
}

type ValkeyConfig struct {
	Addr string `mapstructure:"addr"`
}

// LLMConfig points at the hosted chat-completion provider and the
// optional remote model-parameter document.
type LLMConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	ConfigURL string `mapstructure:"config_url"`
}

// LocationConfig tunes the resolver cascade. A non-zero static position
// enables the fixed-position provider used by kiosk installs.
type LocationConfig struct {
	IPAPIURL         string  `mapstructure:"ipapi_url"`
	GeocodeAPIKey    string  `mapstructure:"geocode_api_key"`
	StaticLat        float64 `mapstructure:"static_lat"`
	StaticLon        float64 `mapstructure:"static_lon"`
	StaticAccuracyM  float64 `mapstructure:"static_accuracy_m"`
	FallbackLat      float64 `mapstructure:"fallback_lat"`
	FallbackLon      float64 `mapstructure:"fallback_lon"`
	FallbackAddress  string  `mapstructure:"fallback_address"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TempoAddr   string `mapstructure:"tempo_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "negosyoplan")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "negosyoplan")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.config_url", "")
	v.SetDefault("location.ipapi_url", "https://ipapi.co/json/")
	v.SetDefault("location.geocode_api_key", "")
	v.SetDefault("location.static_lat", 0)
	v.SetDefault("location.static_lon", 0)
	v.SetDefault("location.static_accuracy_m", 50)
	v.SetDefault("location.fallback_lat", 14.5995)
	v.SetDefault("location.fallback_lon", 120.9842)
	v.SetDefault("location.fallback_address", "Manila, Philippines")
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.tempo_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", true)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: NEGOSYOPLAN_DATABASE_HOST → database.host
	v.SetEnvPrefix("NEGOSYOPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// HasStaticPosition reports whether a fixed kiosk position is configured.
func (c *Config) HasStaticPosition() bool {
	return c.Location.StaticLat != 0 || c.Location.StaticLon != 0
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Database.Host == "" {
		errs = append(errs, "database.host is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", c.Database.Port))
	}
	if c.Database.User == "" {
		errs = append(errs, "database.user is required")
	}
	if c.Database.DBName == "" {
		errs = append(errs, "database.dbname is required")
	}
	if c.NATS.URL == "" {
		errs = append(errs, "nats.url is required")
	}
	if c.Valkey.Addr == "" {
		errs = append(errs, "valkey.addr is required")
	}
	if c.LLM.BaseURL == "" {
		errs = append(errs, "llm.base_url is required")
	}
	if c.Location.FallbackLat < -90 || c.Location.FallbackLat > 90 ||
		c.Location.FallbackLon < -180 || c.Location.FallbackLon > 180 {
		errs = append(errs, "location fallback coordinate out of range")
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
