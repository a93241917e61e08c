package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int      `env:"PORT" envDefault:"8080" json:"port"`
	Environment string   `env:"ENVIRONMENT" envDefault:"development" json:"environment"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," json:"cors_allowed_origins"`
	Timezone    string   `env:"TIMEZONE" envDefault:"America/Sao_Paulo" json:"timezone"`

	// MongoDB configuration
	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017" json:"mongo_uri"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"safekids" json:"mongo_database"`

	// Redis configuration
	RedisURI          string        `env:"REDIS_URI" envDefault:"localhost:6379" json:"redis_uri"`
	RedisPassword     string        `env:"REDIS_PASSWORD" json:"redis_password"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0" json:"redis_db"`
	RedisTTL          time.Duration `env:"REDIS_TTL" envDefault:"60m" json:"redis_ttl"`
	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"30s" json:"dashboard_cache_ttl"`

	// Collection names
	CriancaCollection     string `env:"MONGODB_CRIANCA_COLLECTION" envDefault:"criancas" json:"mongo_crianca_collection"`
	ResponsavelCollection string `env:"MONGODB_RESPONSAVEL_COLLECTION" envDefault:"responsaveis" json:"mongo_responsavel_collection"`
	TioCollection         string `env:"MONGODB_TIO_COLLECTION" envDefault:"tios" json:"mongo_tio_collection"`
	CultoCollection       string `env:"MONGODB_CULTO_COLLECTION" envDefault:"cultos" json:"mongo_culto_collection"`
	UsuarioCollection     string `env:"MONGODB_USUARIO_COLLECTION" envDefault:"usuarios" json:"mongo_usuario_collection"`
	PhotoBucket           string `env:"MONGODB_PHOTO_BUCKET" envDefault:"photos" json:"mongo_photo_bucket"`

	// Photo upload configuration
	PhotoMaxBytes int64 `env:"PHOTO_MAX_BYTES" envDefault:"5242880" json:"photo_max_bytes"`

	// Session token configuration
	JWTSecret string        `env:"JWT_SECRET" json:"-"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"app-safekids" json:"jwt_issuer"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"12h" json:"jwt_ttl"`

	// Password hashing work factor
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10" json:"bcrypt_cost"`

	// Tracing configuration
	TracingEnabled     bool    `env:"TRACING_ENABLED" envDefault:"false" json:"tracing_enabled"`
	TracingEndpoint    string  `env:"TRACING_ENDPOINT" envDefault:"localhost:4317" json:"tracing_endpoint"`
	TracingSampleRatio float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1" json:"tracing_sample_ratio"`

	// Index maintenance
	IndexMaintenanceInterval time.Duration `env:"INDEX_MAINTENANCE_INTERVAL" envDefault:"1h" json:"index_maintenance_interval"`

	location *time.Location
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one is present in the working directory.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg, err := Parse()
	if err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

// Parse builds a Config from the current environment without touching the
// global AppConfig.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %d", cfg.BcryptCost)
	}
	if cfg.TracingSampleRatio < 0 || cfg.TracingSampleRatio > 1 {
		return nil, fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %v", cfg.TracingSampleRatio)
	}
	if cfg.PhotoMaxBytes <= 0 {
		return nil, fmt.Errorf("invalid PHOTO_MAX_BYTES: %d", cfg.PhotoMaxBytes)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.location = loc

	return &cfg, nil
}

// Location returns the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c == nil || c.location == nil {
		return time.UTC
	}
	return c.location
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c != nil && c.Environment == "production"
}
