package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Database       DatabaseConfig       `toml:"database"`
	Metrics        MetricsConfig        `toml:"metrics"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	PayPal         PayPalConfig         `toml:"paypal"`
	Pricing        PricingConfig        `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN собирает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// GoogleCalendarConfig настройки клиента Google Calendar
type GoogleCalendarConfig struct {
	BaseURL      string `toml:"base_url"`
	TokenURL     string `toml:"token_url"`
	APIKey       string `toml:"api_key"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	Timezone     string `toml:"timezone"`
	EventSummary string `toml:"event_summary"`
	Timeout      int    `toml:"timeout"`
}

// PayPalConfig настройки клиента PayPal
type PayPalConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"`
}

// PricingConfig настройки ценообразования
type PricingConfig struct {
	LessonPrice float64 `toml:"lesson_price"`
	Currency    string  `toml:"currency"`
}

// Load загружает конфигурацию из TOML файла.
// Перед чтением файла подгружает .env (если он есть), после чего секреты
// могут быть переопределены переменными окружения.
func Load(path string) (*Config, error) {
	// .env может отсутствовать - это не ошибка
	_ = godotenv.Load(".env")

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides переопределяет секреты из переменных окружения
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.GoogleCalendar.APIKey = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		c.GoogleCalendar.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		c.GoogleCalendar.ClientSecret = v
	}
	if v := os.Getenv("GOOGLE_REFRESH_TOKEN"); v != "" {
		c.GoogleCalendar.RefreshToken = v
	}
}

// applyDefaults устанавливает дефолтные значения для необязательных полей
func (c *Config) applyDefaults() {
	if c.GoogleCalendar.BaseURL == "" {
		c.GoogleCalendar.BaseURL = "https://www.googleapis.com/calendar/v3"
	}
	if c.GoogleCalendar.TokenURL == "" {
		c.GoogleCalendar.TokenURL = "https://oauth2.googleapis.com/token"
	}
	if c.GoogleCalendar.Timezone == "" {
		c.GoogleCalendar.Timezone = "Europe/London"
	}
	if c.GoogleCalendar.Timeout == 0 {
		c.GoogleCalendar.Timeout = 15
	}
	if c.PayPal.BaseURL == "" {
		c.PayPal.BaseURL = "https://api.sandbox.paypal.com"
	}
	if c.PayPal.Timeout == 0 {
		c.PayPal.Timeout = 15
	}
	if c.Pricing.LessonPrice == 0 {
		c.Pricing.LessonPrice = domain.DefaultLessonPrice
	}
	if c.Pricing.Currency == "" {
		c.Pricing.Currency = domain.DefaultCurrency
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Pricing.LessonPrice < 0 {
		return fmt.Errorf("config: pricing.lesson_price must not be negative")
	}
	return nil
}
