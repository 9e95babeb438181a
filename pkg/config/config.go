package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	// DriverMemory keeps everything in process memory. Local development only.
	DriverMemory = "memory"
)

type Config struct {
	ServerPort  string `mapstructure:"SERVER_PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`

	DBDriver                   string `mapstructure:"DB_DRIVER"`
	FirebaseProject            string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseServiceAccountPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	FirebaseServiceAccountJSON string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirebaseAuthEnabled        bool   `mapstructure:"FIREBASE_AUTH_ENABLED"`
	MongoURI                   string `mapstructure:"MONGO_URI"`
	MongoDatabase              string `mapstructure:"MONGO_DATABASE"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTExpiry int64  `mapstructure:"JWT_EXPIRY"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	CacheTTL      int64  `mapstructure:"CACHE_TTL"`

	StorageBucket string `mapstructure:"STORAGE_BUCKET"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]interface{}{
	"SERVER_PORT":                   "8080",
	"ENVIRONMENT":                   "development",
	"DB_DRIVER":                     DriverFirestore,
	"FIREBASE_PROJECT_ID":           "",
	"FIREBASE_SERVICE_ACCOUNT_PATH": "",
	"FIREBASE_SERVICE_ACCOUNT_JSON": "",
	"FIREBASE_AUTH_ENABLED":         false,
	"MONGO_URI":                     "mongodb://localhost:27017",
	"MONGO_DATABASE":                "real-estate",
	"JWT_SECRET":                    "",
	"JWT_EXPIRY":                    24 * 60 * 60, // 24 hours
	"REDIS_ADDR":                    "",
	"REDIS_PASSWORD":                "",
	"CACHE_TTL":                     300,
	"STORAGE_BUCKET":                "",
	"LOG_LEVEL":                     "info",
	"LOG_FORMAT":                    "json",
	"CORS_ALLOWED_ORIGINS":          "*",
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when DB_DRIVER=%s", DriverFirestore)
		}
	case DriverMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required when DB_DRIVER=%s", DriverMongo)
		}
	case DriverMemory:
		if c.IsProduction() {
			return fmt.Errorf("DB_DRIVER=%s cannot be used in production", DriverMemory)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		c.JWTSecret = "dev-secret-change-me"
	}

	if c.FirebaseAuthEnabled && c.FirebaseProject == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required when FIREBASE_AUTH_ENABLED=true")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
