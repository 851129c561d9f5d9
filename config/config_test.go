package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_FileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  env: test
  serviceName: moim
  log:
    level: debug
http:
  port: 8080
naver:
  mapClientId: file-id
routing:
  providerTimeout: 3s
`)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "moim", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "file-id", cfg.Naver.MapClientID)
	assert.Equal(t, 3*time.Second, cfg.Routing.ProviderTimeout)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
naver:
  mapClientId: file-id
  mapClientSecret: file-secret
`)

	t.Setenv("NAVER_MAPCLIENTSECRET", "env-secret")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "file-id", cfg.Naver.MapClientID)
	assert.Equal(t, "env-secret", cfg.Naver.MapClientSecret)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("nope", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 5*time.Second, cfg.Routing.ProviderTimeout)
	assert.Equal(t, "https://router.project-osrm.org", cfg.OSRM.BaseURL)
	assert.NotNil(t, cfg.Naver)
}
