package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/umstad/quizgen/internal/entity"
	pkgRetry "github.com/umstad/quizgen/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	OpenAICfg      OpenAIConfig      `envPrefix:"OPENAI_"`
	VectorIndexCfg VectorIndexConfig `envPrefix:"VECTOR_"`

	GenerationCfg     GenerationConfig     `envPrefix:"GENERATION_"`
	EmbeddingCacheCfg EmbeddingCacheConfig `envPrefix:"EMBEDDING_CACHE_"`
	AuthCfg           AuthConfig           `envPrefix:"AUTH_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	MaxIdleConnsPerHost   int           `env:"MAX_IDLE_CONNS_PER_HOST" envDefault:"10"`
	Token                 string        `env:"API_KEY"`
	Url                   string        `env:"BASE_URL"`
}

type OpenAIConfig struct {
	HTTPClientConfig
	EmbeddingModel  string               `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	GenerationModel string               `env:"GENERATION_MODEL" envDefault:"ft:gpt-4o-2024-08-06:umstad::AvydhEM5"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

const (
	VectorProviderPinecone = "pinecone"
	VectorProviderPGVector = "pgvector"
)

type VectorIndexConfig struct {
	Provider string `env:"PROVIDER" envDefault:"pinecone"`

	// Pinecone index host, e.g. https://general-context-xxxx.svc.pinecone.io
	PineconeCfg HTTPClientConfig     `envPrefix:"PINECONE_"`
	Namespace   string               `env:"PINECONE_NAMESPACE"`
	Retry       pkgRetry.RetryConfig `envPrefix:"RETRY_"`

	// pgvector settings, used when Provider is "pgvector"
	TableName string `env:"TABLE_NAME" envDefault:"knowledge_passages"`
	Dimension int    `env:"DIMENSION" envDefault:"1536"`
}

type GenerationConfig struct {
	Overlap               int           `env:"OVERLAP" envDefault:"2"`
	TopK                  int           `env:"TOP_K" envDefault:"2"`
	ItemTimeout           time.Duration `env:"ITEM_TIMEOUT" envDefault:"90s"`
	BatchTimeout          time.Duration `env:"BATCH_TIMEOUT" envDefault:"10m"`
	Concurrency           int           `env:"CONCURRENCY" envDefault:"5"`
	InputPricePerMillion  float64       `env:"INPUT_PRICE_PER_MILLION" envDefault:"0.15"`
	OutputPricePerMillion float64       `env:"OUTPUT_PRICE_PER_MILLION" envDefault:"0.6"`
}

// Pricing returns the configured token prices.
func (g GenerationConfig) Pricing() entity.Pricing {
	return entity.Pricing{
		InputPerMillion:  g.InputPricePerMillion,
		OutputPerMillion: g.OutputPricePerMillion,
	}
}

type EmbeddingCacheConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"24h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"1h"`
}

type AuthConfig struct {
	Password     string        `env:"PASSWORD,notEmpty"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"auth"`
	CookieMaxAge time.Duration `env:"COOKIE_MAX_AGE" envDefault:"24h"`
	// Secure is forced on in the prod environment.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load reads the env file of the given environment and parses the variables.
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment
	if cfg.IsProduction() {
		cfg.AuthCfg.CookieSecure = true
	}

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

func validateConfig(cfg *Config) error {
	var errors []string

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	// Validate generation configuration
	if cfg.GenerationCfg.Overlap < 0 || cfg.GenerationCfg.Overlap > 10 {
		errors = append(errors, fmt.Sprintf("GENERATION_OVERLAP must be between 0 and 10, got %d", cfg.GenerationCfg.Overlap))
	}

	if cfg.GenerationCfg.TopK < 1 || cfg.GenerationCfg.TopK > 20 {
		errors = append(errors, fmt.Sprintf("GENERATION_TOP_K must be between 1 and 20, got %d", cfg.GenerationCfg.TopK))
	}

	if cfg.GenerationCfg.Concurrency < 1 || cfg.GenerationCfg.Concurrency > 32 {
		errors = append(errors, fmt.Sprintf("GENERATION_CONCURRENCY must be between 1 and 32, got %d", cfg.GenerationCfg.Concurrency))
	}

	if cfg.GenerationCfg.InputPricePerMillion < 0 || cfg.GenerationCfg.OutputPricePerMillion < 0 {
		errors = append(errors, "GENERATION_*_PRICE_PER_MILLION must not be negative")
	}

	// Validate external services
	switch cfg.VectorIndexCfg.Provider {
	case VectorProviderPinecone:
		if !cfg.EnableMocks && cfg.VectorIndexCfg.PineconeCfg.Url == "" {
			errors = append(errors, "VECTOR_PINECONE_BASE_URL is required for the pinecone provider")
		}
	case VectorProviderPGVector:
	default:
		errors = append(errors, fmt.Sprintf("VECTOR_PROVIDER must be %q or %q, got %q", VectorProviderPinecone, VectorProviderPGVector, cfg.VectorIndexCfg.Provider))
	}

	if !cfg.EnableMocks && cfg.OpenAICfg.Token == "" {
		errors = append(errors, "OPENAI_API_KEY is required unless ENABLE_MOCKS is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
