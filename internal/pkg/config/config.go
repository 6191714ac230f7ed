package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Model ModelConfig
	Media MediaConfig
	Geo   GeoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=proproperty"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ModelConfig points at the serialized regression artifacts. The service
// starts without them, degrading valuations until they appear on disk.
type ModelConfig struct {
	WeightsPath string `env:"MODEL_WEIGHTS_PATH, default=model/house_model.json"`
	ColumnsPath string `env:"MODEL_COLUMNS_PATH, default=model/model_columns.json"`
}

type MediaConfig struct {
	Dir string `env:"MEDIA_DIR, default=content"`
}

type GeoConfig struct {
	PostalBaseURL    string        `env:"GEO_POSTAL_URL,     default=https://api.zippopotam.us"`
	NominatimBaseURL string        `env:"GEO_NOMINATIM_URL,  default=https://nominatim.openstreetmap.org"`
	UserAgent        string        `env:"GEO_USER_AGENT,     default=ProPropertyAI/1.0"`
	PostalTimeout    time.Duration `env:"GEO_POSTAL_TIMEOUT, default=4s"`
	GeocodeTimeout   time.Duration `env:"GEO_TIMEOUT,        default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
