package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultHTTPPort           = "8080"
	DefaultGeocodingTimeout   = 5 * time.Second
	DefaultCourierTimeout     = 10 * time.Second
	DefaultAddressCacheSize   = 512
	DefaultAddressCacheTTL    = 30 * time.Minute
	DefaultFlowIdleTTL        = 2 * time.Hour
	DefaultFlowReaperSchedule = "0 * * * * *"
	DefaultTimezone           = "Asia/Seoul"
)

// Config is filled from the environment. Each field is read from the upper-cased
// mapstructure key, e.g. GeocodingTimeout from GEOCODING_TIMEOUT.
type Config struct {
	HTTPPort   string `mapstructure:"http_port"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	GeocodingURL     string        `mapstructure:"geocoding_url"`
	GeocodingTimeout time.Duration `mapstructure:"geocoding_timeout"`
	CourierURL       string        `mapstructure:"courier_url"`
	CourierToken     string        `mapstructure:"courier_token"`
	CourierTimeout   time.Duration `mapstructure:"courier_timeout"`

	AddressCacheSize int           `mapstructure:"address_cache_size"`
	AddressCacheTTL  time.Duration `mapstructure:"address_cache_ttl"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	RedisPassword    string        `mapstructure:"redis_password"`
	RedisDB          int           `mapstructure:"redis_db"`

	FlowIdleTTL        time.Duration `mapstructure:"flow_idle_ttl"`
	FlowReaperSchedule string        `mapstructure:"flow_reaper_schedule"`
	Timezone           string        `mapstructure:"timezone"`
}

// LoadConfig reads the process environment. Unset or empty variables fall back to defaults;
// values that are set but malformed are errors.
func LoadConfig() (Config, error) {
	v := viper.New()

	// every key needs a default so that Unmarshal sees it
	v.SetDefault("http_port", DefaultHTTPPort)
	v.SetDefault("db_host", "")
	v.SetDefault("db_port", "")
	v.SetDefault("db_user", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("geocoding_url", "")
	v.SetDefault("geocoding_timeout", DefaultGeocodingTimeout)
	v.SetDefault("courier_url", "")
	v.SetDefault("courier_token", "")
	v.SetDefault("courier_timeout", DefaultCourierTimeout)
	v.SetDefault("address_cache_size", DefaultAddressCacheSize)
	v.SetDefault("address_cache_ttl", DefaultAddressCacheTTL)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("flow_idle_ttl", DefaultFlowIdleTTL)
	v.SetDefault("flow_reaper_schedule", DefaultFlowReaperSchedule)
	v.SetDefault("timezone", DefaultTimezone)

	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	for key, d := range map[string]time.Duration{
		"GEOCODING_TIMEOUT": c.GeocodingTimeout,
		"COURIER_TIMEOUT":   c.CourierTimeout,
		"ADDRESS_CACHE_TTL": c.AddressCacheTTL,
		"FLOW_IDLE_TTL":     c.FlowIdleTTL,
	} {
		if d <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %s", key, d)
		}
	}

	return c, nil
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
