package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("MONGO_HOST", "test-host")
	t.Setenv("MONGO_SERVER_SELECTION_TIMEOUT_MS", "2500")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Mongo.Host)
	assert.Equal(t, 2500, cfg.Mongo.ServerSelectionTimeoutMS)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_DB", "")
	t.Setenv("MONGO_AUTH_SOURCE", "")
	t.Setenv("MONGO_COLLECTION", "")
	t.Setenv("MONGO_SERVER_SELECTION_TIMEOUT_MS", "")

	cfg := Load()

	assert.Equal(t, "AAC", cfg.Mongo.Name)
	assert.Equal(t, "animals", cfg.Mongo.Collection)
	assert.Equal(t, "AAC", cfg.Mongo.AuthSource)
	assert.Equal(t, 4000, cfg.Mongo.ServerSelectionTimeoutMS)
}

func TestLoad_AuthSourceFollowsDatabase(t *testing.T) {
	t.Setenv("MONGO_DB", "shelter")
	t.Setenv("MONGO_AUTH_SOURCE", "")

	cfg := Load()

	assert.Equal(t, "shelter", cfg.Mongo.AuthSource)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
