package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// ErrIncompleteDatabaseConfig возвращается при неполной конфигурации БД
// Запись бронирований без корректных учетных данных недопустима -
// сервис отказывается стартовать вместо тихой деградации
var ErrIncompleteDatabaseConfig = errors.New("config: database configuration is incomplete")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig рабочее окно бронирования
type BookingConfig struct {
	OpenTime           string `toml:"open_time"`            // "08:00"
	CloseTime          string `toml:"close_time"`           // "17:00", включительно
	SlotStepMinutes    int    `toml:"slot_step_minutes"`    // шаг сетки слотов
	AdvanceBookingDays int    `toml:"advance_booking_days"` // горизонт бронирования
}

// WhatsAppConfig параметры канала подтверждения оплаты
type WhatsAppConfig struct {
	Number   string `toml:"number"`   // номер оператора в международном формате без "+"
	Location string `toml:"location"` // точка сбора, попадает в сообщение и календарь
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Booking.OpenTime == "" {
		c.Booking.OpenTime = domain.DefaultOpenTime
	}
	if c.Booking.CloseTime == "" {
		c.Booking.CloseTime = domain.DefaultCloseTime
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Booking.AdvanceBookingDays == 0 {
		c.Booking.AdvanceBookingDays = domain.DefaultAdvanceBookingDays
	}
}

func (c *Config) validate() error {
	// Fail closed: без полной конфигурации БД путь записи не должен работать
	if c.Database.Host == "" || c.Database.Port == 0 || c.Database.User == "" || c.Database.DBName == "" {
		return ErrIncompleteDatabaseConfig
	}

	if c.Booking.SlotStepMinutes < 0 {
		return fmt.Errorf("config: slot_step_minutes must be positive, got %d", c.Booking.SlotStepMinutes)
	}
	if c.Booking.OpenTime >= c.Booking.CloseTime {
		return fmt.Errorf("config: open_time %q must be before close_time %q",
			c.Booking.OpenTime, c.Booking.CloseTime)
	}

	return nil
}
