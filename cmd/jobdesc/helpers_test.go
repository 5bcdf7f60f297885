package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhakago/jobdesc-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	orig := [4]any{flagConfigFile, flagAPIURL, flagSecret, flagVerbose}
	t.Cleanup(func() {
		flagConfigFile = orig[0].(string)
		flagAPIURL = orig[1].(string)
		flagSecret = orig[2].(string)
		flagVerbose = orig[3].(bool)
	})
	flagConfigFile = ""
	flagAPIURL = ""
	flagSecret = ""
	flagVerbose = false
}

func TestResolveConfigRequiresURL(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvSessionSecret, "")

	_, err := resolveConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvAPIURL)
}

func TestResolveConfigFromEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvAPIURL, "https://jobdesc.example.com/api")
	t.Setenv(config.EnvSessionSecret, "env-secret")

	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://jobdesc.example.com/api", cfg.BaseURL)
	assert.Equal(t, "env-secret", cfg.SessionSecret)
}

func TestResolveConfigFlagBeatsEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvAPIURL, "https://env.example.com/api")
	t.Setenv(config.EnvSessionSecret, "")
	flagAPIURL = "https://flag.example.com/api"

	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com/api", cfg.BaseURL)
}

func TestResolveConfigFileBeatsEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvAPIURL, "https://env.example.com/api")
	t.Setenv(config.EnvSessionSecret, "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"https://file.example.com/api","changed_by":"hr.admin"}`), 0644))
	flagConfigFile = path

	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com/api", cfg.BaseURL)
	assert.Equal(t, "hr.admin", cfg.ChangedBy)
}

func TestResolveConfigInvalidURL(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvSessionSecret, "")
	flagAPIURL = "not-a-url"

	_, err := resolveConfig()
	require.Error(t, err)
}

func TestStdinConfirmerAssumeYes(t *testing.T) {
	confirm := stdinConfirmer(true)
	assert.True(t, confirm.Confirm("anything"))
}
