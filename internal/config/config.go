package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Interview InterviewConfig `toml:"interview"`
	Booking   BookingConfig   `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
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

// DSN возвращает строку подключения для lib/pq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// InterviewConfig правила планирования интервью
type InterviewConfig struct {
	// DurationMinutes точная длительность интервью (и минимальная длительность слота)
	DurationMinutes int `toml:"duration_minutes"`

	// WorkingHoursFrom / WorkingHoursTo рабочие часы, в которые должны попадать слоты
	WorkingHoursFrom string `toml:"working_hours_from"`
	WorkingHoursTo   string `toml:"working_hours_to"`
}

// BookingConfig ограничения на поля бронирования
type BookingConfig struct {
	MaxSubjectLength     int `toml:"max_subject_length"`
	MaxDescriptionLength int `toml:"max_description_length"`
}

// Load читает и валидирует конфигурацию из TOML файла
// Отсутствующие значения секций [interview] и [booking] заполняются дефолтами
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Interview.DurationMinutes == 0 {
		c.Interview.DurationMinutes = domain.DefaultInterviewDurationMinutes
	}
	if c.Interview.WorkingHoursFrom == "" {
		c.Interview.WorkingHoursFrom = domain.DefaultWorkingHoursFrom
	}
	if c.Interview.WorkingHoursTo == "" {
		c.Interview.WorkingHoursTo = domain.DefaultWorkingHoursTo
	}
	if c.Booking.MaxSubjectLength == 0 {
		c.Booking.MaxSubjectLength = domain.DefaultMaxSubjectLength
	}
	if c.Booking.MaxDescriptionLength == 0 {
		c.Booking.MaxDescriptionLength = domain.DefaultMaxDescriptionLength
	}
}

func (c *Config) validate() error {
	if c.Interview.DurationMinutes <= 0 || c.Interview.DurationMinutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("config: interview.duration_minutes must be a positive multiple of %d", domain.SlotStepMinutes)
	}

	from, err := types.NewTimeStringFromString(c.Interview.WorkingHoursFrom)
	if err != nil {
		return fmt.Errorf("config: interview.working_hours_from: %w", err)
	}
	to, err := types.NewTimeStringFromString(c.Interview.WorkingHoursTo)
	if err != nil {
		return fmt.Errorf("config: interview.working_hours_to: %w", err)
	}
	if !from.IsBefore(to) {
		return fmt.Errorf("config: working hours range [%s - %s] is empty", from, to)
	}

	return nil
}
