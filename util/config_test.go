package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// The missing-directory case must run before a config file enters
	// viper's search path.
	t.Run("missing_config_file", func(t *testing.T) {
		_, err := LoadConfig(t.TempDir())
		require.Error(t, err)
	})

	t.Run("reads_app_env", func(t *testing.T) {
		dir := t.TempDir()
		content := "ENVIRONMENT=development\n" +
			"HTTP_SERVER_ADDRESS=127.0.0.1:9000\n" +
			"ALLOWED_ORIGINS=http://localhost:5173,https://example.com\n" +
			"TAGSET_DIR=tables\n" +
			"MAX_BATCH_SIZE=250\n" +
			"SHUTDOWN_TIMEOUT=7s\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

		config, err := LoadConfig(dir)
		require.NoError(t, err)

		require.Equal(t, "development", config.Environment)
		require.True(t, config.IsDevelopment())
		require.Equal(t, "127.0.0.1:9000", config.HTTPServerAddress)
		require.Equal(t, []string{"http://localhost:5173", "https://example.com"}, config.AllowedOrigins)
		require.Equal(t, "tables", config.TagsetDir)
		require.Equal(t, 250, config.MaxBatchSize)
		require.Equal(t, 7*time.Second, config.ShutdownTimeout)
	})
}

func TestBatchLimit(t *testing.T) {
	config := Config{MaxBatchSize: 42}
	require.Equal(t, 42, config.BatchLimit())

	config = Config{}
	require.Equal(t, defaultMaxBatchSize, config.BatchLimit())

	config = Config{MaxBatchSize: -5}
	require.Equal(t, defaultMaxBatchSize, config.BatchLimit())
}
