package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml.
// Передается явно в компоненты при инициализации - внутри операций
// никакое ambient-состояние (env) не читается.
type Config struct {
	Server          Server          `toml:"server"`
	Logs            Logs            `toml:"logs"`
	Metrics         Metrics         `toml:"metrics"`
	Database        Database        `toml:"database"`
	CalendarService CalendarService `toml:"calendar_service"`
	PaymentService  PaymentService  `toml:"payment_service"`
	MailService     MailService     `toml:"mail_service"`
	Booking         Booking         `toml:"booking"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Database настройки подключения к Postgres
type Database struct {
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

// DSN возвращает строку подключения для lib/pq
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarService настройки клиента календарного сервиса
type CalendarService struct {
	URL        string `toml:"url"`
	CalendarID string `toml:"calendar_id"`
	APIKey     string `toml:"api_key"`
	Timeout    int    `toml:"timeout"` // секунды
}

// PaymentService настройки клиента платежного процессора
type PaymentService struct {
	URL            string `toml:"url"`
	ClientID       string `toml:"client_id"`
	ClientSecret   string `toml:"client_secret"`
	Timeout        int    `toml:"timeout"` // секунды
	PaymentPageURL string `toml:"payment_page_url"`
}

// MailService настройки клиента почтового сервиса
type MailService struct {
	URL       string `toml:"url"`
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	Timeout   int    `toml:"timeout"` // секунды
}

// Booking бизнес-настройки бронирования
type Booking struct {
	DepositAmount   string `toml:"deposit_amount"`   // "30.00"
	DepositCurrency string `toml:"deposit_currency"` // ISO 4217, "EUR"
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.CalendarService.URL == "" {
		return fmt.Errorf("calendar_service.url is required")
	}
	if c.PaymentService.URL == "" {
		return fmt.Errorf("payment_service.url is required")
	}
	if c.MailService.URL == "" {
		return fmt.Errorf("mail_service.url is required")
	}
	if c.Booking.DepositAmount == "" {
		return fmt.Errorf("booking.deposit_amount is required")
	}
	if c.Booking.DepositCurrency == "" {
		return fmt.Errorf("booking.deposit_currency is required")
	}
	return nil
}
