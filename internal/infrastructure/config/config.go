package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// Config holds application configuration values.
type Config struct {
	AppEnv             string
	Port               string
	JWTSecret          string
	TokenTTL           time.Duration
	BcryptCost         int
	StoreDriver        string
	DatabaseURL        string
	MongoURI           string
	MongoDBName        string
	RedisURL           string
	RateLimitRPS       float64
	SeedUsers          bool
	CORSAllowedOrigins []string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() (usecasecontract.IConfigProvider, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		TokenTTL:           time.Minute * time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 60)),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 10),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "pet_symptom_tracker"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 10),
		SeedUsers:          getEnvAsBool("SEED_USERS", false),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable not set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL_MINUTES must be positive")
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL environment variable not set")
		}
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI environment variable not set")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func (c *Config) GetAppEnv() string               { return c.AppEnv }
func (c *Config) GetPort() string                 { return c.Port }
func (c *Config) GetJWTSecret() string            { return c.JWTSecret }
func (c *Config) GetTokenTTL() time.Duration      { return c.TokenTTL }
func (c *Config) GetBcryptCost() int              { return c.BcryptCost }
func (c *Config) GetStoreDriver() string          { return c.StoreDriver }
func (c *Config) GetDatabaseURL() string          { return c.DatabaseURL }
func (c *Config) GetMongoURI() string             { return c.MongoURI }
func (c *Config) GetMongoDBName() string          { return c.MongoDBName }
func (c *Config) GetRedisURL() string             { return c.RedisURL }
func (c *Config) GetRateLimitRPS() float64        { return c.RateLimitRPS }
func (c *Config) GetSeedUsers() bool              { return c.SeedUsers }
func (c *Config) GetCORSAllowedOrigins() []string { return c.CORSAllowedOrigins }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// comma separated, blanks dropped
func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
