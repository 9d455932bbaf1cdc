package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port        string `mapstructure:"PORT"`
	GinMode     string `mapstructure:"GIN_MODE"`
	Environment string `mapstructure:"ENVIRONMENT"`

	// Database
	DBDriver    string `mapstructure:"DB_DRIVER"` // "postgres" or "sqlite"
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`

	// Redis (optional; sessions fall back to in-process store)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Sessions
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	SessionCookie   string `mapstructure:"SESSION_COOKIE"`
	CookieSecure    bool   `mapstructure:"COOKIE_SECURE"`

	// Uploads
	UploadDir string `mapstructure:"UPLOAD_DIR"`
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("SQLITE_PATH", "programs.db")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE", "session_id")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("UPLOAD_DIR", "uploads")

	_ = viper.ReadInConfig()

	cfg := &Config{}
	for _, key := range []string{
		"PORT", "GIN_MODE", "ENVIRONMENT", "DB_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"REDIS_URL", "SESSION_TTL_HOURS", "SESSION_COOKIE", "COOKIE_SECURE", "UPLOAD_DIR",
	} {
		if val := os.Getenv(key); val != "" {
			viper.Set(key, val)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// A DATABASE_URL implies the postgres driver unless told otherwise
	if cfg.DatabaseURL != "" && os.Getenv("DB_DRIVER") == "" {
		cfg.DBDriver = "postgres"
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
