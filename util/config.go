package util

import (
	"time"

	"github.com/spf13/viper"
)

// defaultMaxBatchSize caps batch decode requests when the config does not
// set a limit.
const defaultMaxBatchSize = 1000

// Config holds the server settings, read from app.env and the process
// environment.
type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	TagsetDir         string        `mapstructure:"TAGSET_DIR"`
	MaxBatchSize      int           `mapstructure:"MAX_BATCH_SIZE"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads app.env from path, letting environment variables
// override file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// BatchLimit returns the configured batch size cap, falling back to the
// default when the config leaves it unset.
func (config *Config) BatchLimit() int {
	if config.MaxBatchSize > 0 {
		return config.MaxBatchSize
	}
	return defaultMaxBatchSize
}

// IsDevelopment reports whether the server runs in the development
// environment.
func (config *Config) IsDevelopment() bool {
	return config.Environment == "development"
}
