package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Переменные окружения, перекрывающие секреты из файла
const (
	EnvDBPassword = "HEARINGS_DB_PASSWORD"
	EnvJWTSecret  = "HEARINGS_JWT_SECRET"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Cache      CacheConfig      `toml:"cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string `toml:"driver"`    // postgres или memory
	SeedFile        string `toml:"seed_file"` // начальные данные для memory
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// CacheConfig кэш справочников; назначения залов не кэшируются
type CacheConfig struct {
	HolidaysTTL int `toml:"holidays_ttl"` // секунды, 0 - без кэша
}

// HolidaysTTLDuration время жизни кэша праздников
func (c CacheConfig) HolidaysTTLDuration() time.Duration {
	return time.Duration(c.HolidaysTTL) * time.Second
}

// SchedulingConfig правила назначения слушаний
type SchedulingConfig struct {
	TimeZone               string `toml:"time_zone"`
	OpenHour               int    `toml:"open_hour"`
	CloseHour              int    `toml:"close_hour"`
	MaxAdvanceMonths       int    `toml:"max_advance_months"`
	HearingDurationMinutes int    `toml:"hearing_duration_minutes"`
}

// Location загружает часовой пояс из конфигурации
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.TimeZone)
}

// HearingDuration длительность одного слушания
func (s SchedulingConfig) HearingDuration() time.Duration {
	return time.Duration(s.HearingDurationMinutes) * time.Minute
}

// Default конфигурация по умолчанию
func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "hearings",
			DBName:          "hearings",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_hearing_service",
		},
		Auth: AuthConfig{
			Issuer: "smc-auth",
		},
		Scheduling: SchedulingConfig{
			TimeZone:               "America/Bogota",
			OpenHour:               9,
			CloseHour:              17,
			MaxAdvanceMonths:       12,
			HearingDurationMinutes: 120,
		},
		Cache: CacheConfig{
			HolidaysTTL: 3600,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv(EnvDBPassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: database.driver must be %q or %q", ErrInvalidConfig, DriverPostgres, DriverMemory)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrInvalidConfig, EnvJWTSecret)
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.time_zone: %v", ErrInvalidConfig, err)
	}
	s := c.Scheduling
	if s.OpenHour < 0 || s.CloseHour > 24 || s.OpenHour >= s.CloseHour {
		return fmt.Errorf("%w: scheduling hours must satisfy 0 <= open_hour < close_hour <= 24", ErrInvalidConfig)
	}
	if s.MaxAdvanceMonths <= 0 {
		return fmt.Errorf("%w: scheduling.max_advance_months must be positive", ErrInvalidConfig)
	}
	if s.HearingDurationMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.hearing_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Cache.HolidaysTTL < 0 {
		return fmt.Errorf("%w: cache.holidays_ttl must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
