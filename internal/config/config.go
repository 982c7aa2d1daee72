package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Slots    SlotsConfig    `toml:"slots"`
	Booking  BookingConfig  `toml:"booking"`
	Razorpay RazorpayConfig `toml:"razorpay"`
	Redis    RedisConfig    `toml:"redis"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к postgres
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
}

// DSN собирает строку подключения к postgres
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotsConfig каталог временных слотов студии
// Слоты генерируются от start_hour до end_hour с шагом step_minutes
type SlotsConfig struct {
	StartHour   int `toml:"start_hour"`
	EndHour     int `toml:"end_hour"`
	StepMinutes int `toml:"step_minutes"`
}

// BookingConfig политики бронирования
type BookingConfig struct {
	// PendingTTLMinutes сколько минут pending-бронирование удерживает слот
	// до автоматического снятия (0 = без ограничения)
	PendingTTLMinutes int `toml:"pending_ttl_minutes"`
}

// RazorpayConfig настройки платежного шлюза
type RazorpayConfig struct {
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	BaseURL   string `toml:"base_url"`
	Timeout   int    `toml:"timeout"`
}

// RedisConfig настройки redis (кеш занятости и канал инвалидации)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// CacheTTLSeconds время жизни кеша занятости
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// KafkaConfig настройки kafka (события бронирований для нотификатора)
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	GroupID string   `toml:"group_id"`
}

// AdminConfig настройки доступа администратора
type AdminConfig struct {
	Token string `toml:"token"`
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Razorpay.KeySecret == "" {
		return fmt.Errorf("config: razorpay.key_secret is required")
	}
	if c.Slots.StepMinutes < 0 {
		return fmt.Errorf("config: slots.step_minutes must not be negative")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers is required when kafka is enabled")
	}
	return nil
}
