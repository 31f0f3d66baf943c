package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	APIServerAddr string `env:"API_SERVER_ADDR" envDefault:":8080"`
	OpsServerAddr string `env:"OPS_SERVER_ADDR" envDefault:":9091"`

	PostgresURL string `env:"POSTGRES_URL,required"`
	RedisAddr   string `env:"REDIS_ADDR,required"`

	// NarrationCacheTTL bounds cached narrations in Redis. Narrations are
	// deterministic, so the TTL only caps memory, not staleness.
	NarrationCacheTTL time.Duration `env:"NARRATION_CACHE_TTL" envDefault:"24h"`
	APIKeyCacheTTL    time.Duration `env:"API_KEY_CACHE_TTL" envDefault:"5m"`

	MaxRequestSize int64   `env:"MAX_REQUEST_SIZE_BYTES" envDefault:"65536"` // 64KB
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// ReplayFrameInterval is the pause between SSE replay frames.
	ReplayFrameInterval time.Duration `env:"REPLAY_FRAME_INTERVAL" envDefault:"1s"`

	NarratorBatchSize int           `env:"NARRATOR_BATCH_SIZE" envDefault:"500"`
	NarratorInterval  time.Duration `env:"NARRATOR_INTERVAL" envDefault:"2s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
