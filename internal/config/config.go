package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver        string
	DBUrl           string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnLifetime  int // minutes
	ServerPort      string
	ServiceTimezone string

	LogLevel  string
	LogFormat string

	Booking BookingConfig
	Service ServiceConfig
}

// BookingConfig holds the scheduling rules every appointment datetime is
// checked against. Times are "HH:MM" in the service timezone.
type BookingConfig struct {
	OpenTime     string
	CloseTime    string
	LastStart    string
	MinLeadMin   int
	WindowDays   int
	SlotStepMin  int
	DateFormat   string
	TimeFormat   string
	MaxListItems int
}

type ServiceConfig struct {
	Location    string
	Coordinates string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBUrl:           getEnv("DATABASE_URL", "car_appointments.sqlite"),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime:  getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ServiceTimezone: getEnv("SERVICE_TIMEZONE", "America/Los_Angeles"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		Booking:         DefaultBooking(),
		Service: ServiceConfig{
			Location:    getEnv("SERVICE_LOCATION", "US, CA, San Francisco"),
			Coordinates: getEnv("SERVICE_COORDINATES", "[37.7749, -122.4194]"),
		},
	}
}

func DefaultBooking() BookingConfig {
	return BookingConfig{
		OpenTime:     getEnv("BOOKING_OPEN_TIME", "09:00"),
		CloseTime:    getEnv("BOOKING_CLOSE_TIME", "18:00"),
		LastStart:    getEnv("BOOKING_LAST_START", "17:30"),
		MinLeadMin:   getEnvInt("BOOKING_MIN_LEAD_MINUTES", 120),
		WindowDays:   getEnvInt("BOOKING_WINDOW_DAYS", 60),
		SlotStepMin:  getEnvInt("BOOKING_SLOT_STEP_MINUTES", 30),
		DateFormat:   "2006-01-02",
		TimeFormat:   "15:04",
		MaxListItems: 3,
	}
}

// LeadText spells the minimum lead time the way users read it, e.g. "2 hours".
func (b BookingConfig) LeadText() string {
	m := b.MinLeadMin
	if m > 0 && m%60 == 0 {
		if m == 60 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", m/60)
	}
	return fmt.Sprintf("%d minutes", m)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
