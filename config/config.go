package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Mail     MailConfig
	Calendar CalendarConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type MailConfig struct {
	Endpoint string
	APIKey   string
	From     string
}

// CalendarConfig holds the default clinic calendar. Weekday lists are
// comma-separated numbers (0=Sunday .. 6=Saturday); holidays are
// comma-separated YYYY-MM-DD dates.
type CalendarConfig struct {
	HiddenDays []int
	HalfDays   []int
	Holidays   []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	viper.SetDefault("DB_MIGRATIONS_DIR", "migrations")
	viper.SetDefault("CALENDAR_HIDDEN_DAYS", "0,6")
	viper.SetDefault("MAIL_ENDPOINT", "https://api.resend.com")

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: viper.GetString("DB_MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Mail: MailConfig{
			Endpoint: viper.GetString("MAIL_ENDPOINT"),
			APIKey:   viper.GetString("MAIL_API_KEY"),
			From:     viper.GetString("MAIL_FROM"),
		},
		Calendar: CalendarConfig{
			HiddenDays: parseIntList(viper.GetString("CALENDAR_HIDDEN_DAYS")),
			HalfDays:   parseIntList(viper.GetString("CALENDAR_HALF_DAYS")),
			Holidays:   parseStringList(viper.GetString("CALENDAR_HOLIDAYS")),
		},
	}

	return config, nil
}

func parseIntList(raw string) []int {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func parseStringList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
