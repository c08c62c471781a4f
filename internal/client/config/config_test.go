package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 30*time.Minute, c.AuditTimeout)
	assert.Empty(t, c.AccessToken)
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("AUDITCTL_ADDRESS", "env:1")
	t.Setenv("AUDITCTL_TOKEN", "tok")
	os.Args = []string{"auditctl", "-a", "flag:2", "run", "d1"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "tok", cfg.AccessToken)
}
