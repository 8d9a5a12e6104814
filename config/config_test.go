package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefault(t *testing.T) {
	cfg := GetDefault()

	assert.Equal(t, "5000", cfg.API.ListenPort)
	assert.Equal(t, "https://api.github.com/graphql", cfg.Github.GraphQLEndpoint)
	assert.Empty(t, cfg.Github.Token)
	assert.Equal(t, 8, cfg.Tasks.MaxParallelTasksAllowed)
	assert.Equal(t, 10, cfg.Tasks.MaxCompareUsers)
	assert.Equal(t, 5, cfg.Languages.DefaultCount)
	assert.Equal(t, 20, cfg.Languages.MaxCount)
	assert.False(t, cfg.Logs.OutputLogsAsJSON)
}

const testConfigFile = `
[API]
ListenPort = "6000"

[GITHUB]
Token = "file-token"

[TASKS]
MaxCompareUsers = 3
`

// chdir move into dir for the duration of the test
func chdir(t *testing.T, dir string) {
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}

// TestLoad read config/config.toml from the working directory, the binary
// directory of the test does not hold any config file
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(testConfigFile), 0o644))
	chdir(t, dir)

	tests := []struct {
		name          string
		envToken      *string
		expectedToken string
	}{
		{name: "Token from file without environment", envToken: nil, expectedToken: "file-token"},
		{name: "Environment token wins over file", envToken: strPtr("env-token"), expectedToken: "env-token"},
		{name: "Empty environment token keeps the file value", envToken: strPtr(""), expectedToken: "file-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envToken != nil {
				t.Setenv("GITHUB_TOKEN", *tt.envToken)
			} else {
				unsetEnv(t, "GITHUB_TOKEN")
			}

			cfg, err := Load()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedToken, cfg.Github.Token)

			// values from the file win over the defaults, the others keep the defaults
			assert.Equal(t, "6000", cfg.API.ListenPort)
			assert.Equal(t, 3, cfg.Tasks.MaxCompareUsers)
			assert.Equal(t, 60, cfg.API.MaxRequestsPerMinute)
			assert.Equal(t, "https://api.github.com/graphql", cfg.Github.GraphQLEndpoint)
			assert.Equal(t, 8, cfg.Tasks.MaxParallelTasksAllowed)
		})
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func strPtr(value string) *string {
	return &value
}

// unsetEnv remove the variable and restore it at the end of the test
func unsetEnv(t *testing.T, key string) {
	previous, found := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))

	t.Cleanup(func() {
		if found {
			_ = os.Setenv(key, previous)
		}
	})
}
