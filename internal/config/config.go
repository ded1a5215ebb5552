package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
	AccessTTL    time.Duration
}

type LedgerConfig struct {
	Dir          string
	FilePrefix   string
	QueueSize    int
	WriteTimeout time.Duration
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Ledger      LedgerConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			AccessTTL:    v.GetDuration("JWT_ACCESS_TTL"),
		},
		Ledger: LedgerConfig{
			Dir:          v.GetString("LEDGER_DIR"),
			FilePrefix:   v.GetString("LEDGER_FILE_PREFIX"),
			QueueSize:    v.GetInt("LEDGER_QUEUE_SIZE"),
			WriteTimeout: v.GetDuration("LEDGER_WRITE_TIMEOUT"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Auth.AccessTTL == 0 {
		cfg.Auth.AccessTTL = 24 * time.Hour
	}
	if cfg.Ledger.Dir == "" {
		cfg.Ledger.Dir = "./ledger"
	}
	if cfg.Ledger.FilePrefix == "" {
		cfg.Ledger.FilePrefix = "PhantomLedger"
	}
	if cfg.Ledger.QueueSize == 0 {
		cfg.Ledger.QueueSize = 256
	}
	if cfg.Ledger.WriteTimeout == 0 {
		cfg.Ledger.WriteTimeout = 30 * time.Second
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
