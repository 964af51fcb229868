package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "USERS_URL", "ALBUMS_URL", "MONGODB_URI", "MONGODB_DATABASE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7521", cfg.Port)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/users", cfg.UsersURL)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/albums", cfg.AlbumsURL)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "directory", cfg.MongoDatabase)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("USERS_URL", "http://localhost:1/users")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:1/users", cfg.UsersURL)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "debug", cfg.LogLevel)
}
