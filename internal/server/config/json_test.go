package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc": "0.0.0.0:9000",
		"secret_key":         "k",
		"storage_provider":   "gcs",
		"gcs_bucket":         "b",
		"invocation_timeout": "30s",
		"run_ceiling":        float64(2 * time.Minute),
		"max_retries":        0,
		"redis_addr":         "redis:6379",
		"stage_catalog_path": "/etc/stages.yaml",
	})

	t.Run("overlays present keys", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg)

		assert.Equal(t, "0.0.0.0:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "k", cfg.SecretKey)
		assert.Equal(t, StorageGCS, cfg.StorageProvider)
		assert.Equal(t, 30*time.Second, cfg.InvocationTimeout)
		assert.Equal(t, 2*time.Minute, cfg.RunCeiling)
		assert.Equal(t, 0, cfg.MaxRetries, "explicit zero disables retries")
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, "/etc/stages.yaml", cfg.StageCatalogPath)
		assert.Equal(t, "dossiers", cfg.S3Bucket, "absent keys keep their value")
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", path}

		var cfg Config
		parseJson(&cfg)
		assert.Equal(t, "0.0.0.0:9000", cfg.EndpointAddrGRPC)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := Config{ModelName: "m"}
		parseJson(&cfg)
		assert.Equal(t, Config{ModelName: "m"}, cfg)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("bad json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		os.Args = []string{"testbin", "-c", bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
