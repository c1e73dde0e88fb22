package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	SMTP         SMTPConfig
	OAuth2Google OAuth2GoogleConfig
	Attendance   AttendanceConfig
}

type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	Timezone    string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// Fallback recipient for company digests when a company has no
	// administrator email on file.
	AdminEmail string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// AttendanceConfig holds the scan and lateness policies. The afternoon split
// and the two lateness cutoffs are minutes-of-day; the cooldown and the
// anti-bounce gap are independent settings and must never be conflated.
type AttendanceConfig struct {
	AfternoonStartMinute int
	MorningLateMinute    int
	AfternoonLateMinute  int
	ScanCooldown         time.Duration
	MinShiftGap          time.Duration
	WeeklyReportWeekday  time.Weekday
	WeeklyReportHour     int
	TopRankSize          int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:    getEnv("APP_TIMEZONE", "America/Lima"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "asistencia_qr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:       getEnv("SMTP_HOST", ""),
		Port:       smtpPort,
		Username:   getEnv("SMTP_USERNAME", ""),
		Password:   getEnv("SMTP_PASSWORD", ""),
		From:       getEnv("SMTP_FROM", ""),
		FromName:   getEnv("SMTP_FROM_NAME", "Sistema Asistencia QR"),
		AdminEmail: getEnv("COMPANY_ADMIN_EMAIL", ""),
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	attendance, err := loadAttendanceConfig()
	if err != nil {
		return nil, err
	}
	config.Attendance = attendance

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadAttendanceConfig() (AttendanceConfig, error) {
	afternoonStart, err := parseMinuteOfDay(getEnv("ATTENDANCE_AFTERNOON_START", "14:00"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("invalid ATTENDANCE_AFTERNOON_START: %w", err)
	}
	morningLate, err := parseMinuteOfDay(getEnv("ATTENDANCE_MORNING_LATE", "06:50"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("invalid ATTENDANCE_MORNING_LATE: %w", err)
	}
	afternoonLate, err := parseMinuteOfDay(getEnv("ATTENDANCE_AFTERNOON_LATE", "14:50"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("invalid ATTENDANCE_AFTERNOON_LATE: %w", err)
	}
	cooldown, err := time.ParseDuration(getEnv("ATTENDANCE_SCAN_COOLDOWN", "10s"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("invalid ATTENDANCE_SCAN_COOLDOWN: %w", err)
	}
	minGap, err := time.ParseDuration(getEnv("ATTENDANCE_MIN_SHIFT_GAP", "5m"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("invalid ATTENDANCE_MIN_SHIFT_GAP: %w", err)
	}
	reportHour, err := strconv.Atoi(getEnv("WEEKLY_REPORT_HOUR", "7"))
	if err != nil || reportHour < 0 || reportHour > 23 {
		return AttendanceConfig{}, fmt.Errorf("invalid WEEKLY_REPORT_HOUR")
	}
	topN, err := strconv.Atoi(getEnv("REPORT_TOP_RANK_SIZE", "5"))
	if err != nil || topN < 1 {
		return AttendanceConfig{}, fmt.Errorf("invalid REPORT_TOP_RANK_SIZE")
	}

	return AttendanceConfig{
		AfternoonStartMinute: afternoonStart,
		MorningLateMinute:    morningLate,
		AfternoonLateMinute:  afternoonLate,
		ScanCooldown:         cooldown,
		MinShiftGap:          minGap,
		WeeklyReportWeekday:  time.Monday,
		WeeklyReportHour:     reportHour,
		TopRankSize:          topN,
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the application timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseMinuteOfDay(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("out of range time %q", value)
	}
	return h*60 + m, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
