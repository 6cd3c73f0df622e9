package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Matching     MatchingConfig
	Logging      LoggingConfig
	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	ServiceSecret string
}

// Weights is the aggregator weight table. It must sum to exactly 100.
type Weights struct {
	Psychological int
	Behavioral    int
	Values        int
	Interests     int
	Lifestyle     int
	Dealbreakers  int
	Astrological  int
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() int {
	return w.Psychological + w.Behavioral + w.Values + w.Interests +
		w.Lifestyle + w.Dealbreakers + w.Astrological
}

// MatchingConfig controls the scoring engine and the batch generator.
type MatchingConfig struct {
	Weights          Weights
	MinScore         int
	WeeklyCap        int
	Workers          int
	RunInterval      time.Duration
	AstroEnabled     bool
	AlgorithmVersion string
}

type LoggingConfig struct {
	Level string
	JSON  bool
}

// Load loads configuration from environment variables or a .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; environment variables always apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MATCH_MIN_SCORE", 70)
	viper.SetDefault("MATCH_WEEKLY_CAP", 5)
	viper.SetDefault("MATCH_WORKERS", 4)
	viper.SetDefault("MATCH_RUN_INTERVAL", "24h")
	viper.SetDefault("MATCH_ASTRO_ENABLED", true)
	viper.SetDefault("WEIGHT_PSYCHOLOGICAL", 28)
	viper.SetDefault("WEIGHT_BEHAVIORAL", 12)
	viper.SetDefault("WEIGHT_VALUES", 20)
	viper.SetDefault("WEIGHT_INTERESTS", 10)
	viper.SetDefault("WEIGHT_LIFESTYLE", 10)
	viper.SetDefault("WEIGHT_DEALBREAKERS", 15)
	viper.SetDefault("WEIGHT_ASTROLOGICAL", 5)

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			ServiceSecret: viper.GetString("SERVICE_JWT_SECRET"),
		},
		Matching: MatchingConfig{
			Weights: Weights{
				Psychological: viper.GetInt("WEIGHT_PSYCHOLOGICAL"),
				Behavioral:    viper.GetInt("WEIGHT_BEHAVIORAL"),
				Values:        viper.GetInt("WEIGHT_VALUES"),
				Interests:     viper.GetInt("WEIGHT_INTERESTS"),
				Lifestyle:     viper.GetInt("WEIGHT_LIFESTYLE"),
				Dealbreakers:  viper.GetInt("WEIGHT_DEALBREAKERS"),
				Astrological:  viper.GetInt("WEIGHT_ASTROLOGICAL"),
			},
			MinScore:         viper.GetInt("MATCH_MIN_SCORE"),
			WeeklyCap:        viper.GetInt("MATCH_WEEKLY_CAP"),
			Workers:          viper.GetInt("MATCH_WORKERS"),
			RunInterval:      viper.GetDuration("MATCH_RUN_INTERVAL"),
			AstroEnabled:     viper.GetBool("MATCH_ASTRO_ENABLED"),
			AlgorithmVersion: viper.GetString("MATCH_ALGORITHM_VERSION"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
			JSON:  viper.GetBool("LOG_JSON"),
		},
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
	}

	if config.Matching.AlgorithmVersion == "" {
		config.Matching.AlgorithmVersion = "v2"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Auth.ServiceSecret == "" {
		return fmt.Errorf("service JWT secret is required")
	}
	if len(c.Auth.ServiceSecret) < 32 {
		return fmt.Errorf("service JWT secret must be at least 32 characters")
	}
	return c.Matching.Validate()
}

// Validate checks the matching parameters, in particular the weight table
// invariant.
func (m *MatchingConfig) Validate() error {
	if sum := m.Weights.Sum(); sum != 100 {
		return fmt.Errorf("dimension weights must sum to 100, got %d", sum)
	}
	if m.MinScore < 0 || m.MinScore > 100 {
		return fmt.Errorf("minimum match score must be in [0,100], got %d", m.MinScore)
	}
	if m.WeeklyCap <= 0 {
		return fmt.Errorf("weekly match cap must be positive, got %d", m.WeeklyCap)
	}
	if m.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", m.Workers)
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns the Redis address.
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
