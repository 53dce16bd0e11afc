package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// TestLoadDefaults verifies that Load applies the expected defaults when only
// the required secret is provided.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("WTWR_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 3001, cfg.Server.Port, "Default server port should be 3001")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Database.URL, "Default database URL should point at local MongoDB")
	assert.Equal(t, "wtwr_db", cfg.Database.Name, "Default database name should be wtwr_db")
	assert.Equal(t, 7, cfg.Auth.TokenLifetimeDays, "Default token lifetime should be 7 days")
	assert.Equal(t, 10, cfg.Auth.BcryptCost, "Default bcrypt cost should be 10")
}

// TestLoadFromEnv verifies that every key, the secret included, is read from
// WTWR_-prefixed environment variables. The secret has no default, so this
// is the only way a deployment provides it.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WTWR_SERVER_PORT", "9090")
	t.Setenv("WTWR_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WTWR_DATABASE_URL", "mongodb://db.internal:27017")
	t.Setenv("WTWR_DATABASE_NAME", "wtwr_test")
	t.Setenv("WTWR_AUTH_JWT_SECRET", testSecret)
	t.Setenv("WTWR_AUTH_TOKEN_LIFETIME_DAYS", "14")
	t.Setenv("WTWR_AUTH_BCRYPT_COST", "12")

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URL)
	assert.Equal(t, "wtwr_test", cfg.Database.Name)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret, "JWT secret should be loaded from the environment")
	assert.Equal(t, 14, cfg.Auth.TokenLifetimeDays)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

// TestLoadValidationErrors verifies that Load rejects invalid configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Missing JWT secret",
			envVars: map[string]string{},
		},
		{
			name: "Short JWT secret",
			envVars: map[string]string{
				"WTWR_AUTH_JWT_SECRET": "tooshort",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"WTWR_AUTH_JWT_SECRET": testSecret,
				"WTWR_SERVER_PORT":     "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"WTWR_AUTH_JWT_SECRET":  testSecret,
				"WTWR_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "Bcrypt cost out of range",
			envVars: map[string]string{
				"WTWR_AUTH_JWT_SECRET":  testSecret,
				"WTWR_AUTH_BCRYPT_COST": "99",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for name, value := range tc.envVars {
				t.Setenv(name, value)
			}

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
