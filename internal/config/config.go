// Package config loads application configuration from the environment (and
// an optional config file) via Viper, with working defaults for local
// development.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config groups all application settings.
type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Minio     MinioConfig
	Inventory InventoryConfig
	Speech    SpeechConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Host     string
	Port     int
	LogLevel string
}

// Addr returns the HTTP listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig holds PostgreSQL settings. DatabaseURL, when set, wins over the
// individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// DSN returns the connection string to use.
func (c DBConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig holds cache settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MinioConfig holds object storage settings for archived voice clips.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// InventoryConfig holds ledger tunables.
type InventoryConfig struct {
	LowStockThreshold int // items strictly below this (and above zero) are low-stock
	TransactionLimit  int // default page size for the transaction history
}

// SpeechConfig selects the speech-to-text engine. Only "mock" ships today.
type SpeechConfig struct {
	Engine string
}

// Load reads configuration from environment variables (INVENTORY_ prefix,
// dots replaced by underscores) and an optional config.yaml next to the
// binary.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.log_level", "info")

	v.SetDefault("db.database_url", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.dbname", "inventory")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "minioadmin")
	v.SetDefault("minio.secret_key", "minioadmin")
	v.SetDefault("minio.bucket", "voice-clips")
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("inventory.low_stock_threshold", 5)
	v.SetDefault("inventory.transaction_limit", 50)

	v.SetDefault("speech.engine", "mock")

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("app.env"),
			Host:     v.GetString("app.host"),
			Port:     v.GetInt("app.port"),
			LogLevel: v.GetString("app.log_level"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("db.database_url"),
			Host:        v.GetString("db.host"),
			Port:        v.GetInt("db.port"),
			User:        v.GetString("db.user"),
			Password:    v.GetString("db.password"),
			DBName:      v.GetString("db.dbname"),
			SSLMode:     v.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Minio: MinioConfig{
			Endpoint:  v.GetString("minio.endpoint"),
			AccessKey: v.GetString("minio.access_key"),
			SecretKey: v.GetString("minio.secret_key"),
			Bucket:    v.GetString("minio.bucket"),
			UseSSL:    v.GetBool("minio.use_ssl"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: v.GetInt("inventory.low_stock_threshold"),
			TransactionLimit:  v.GetInt("inventory.transaction_limit"),
		},
		Speech: SpeechConfig{
			Engine: v.GetString("speech.engine"),
		},
	}

	if cfg.Inventory.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("low stock threshold must be positive, got %d", cfg.Inventory.LowStockThreshold)
	}
	if cfg.Inventory.TransactionLimit <= 0 {
		return nil, fmt.Errorf("transaction limit must be positive, got %d", cfg.Inventory.TransactionLimit)
	}
	return cfg, nil
}
