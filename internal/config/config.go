package config

import (
	"os"
	"strconv"
)

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	Host                     string
	Port                     string
	User                     string
	Password                 string
	Name                     string
	Collection               string
	AuthSource               string
	ServerSelectionTimeoutMS int
}

// MinIOConfig holds object storage settings for record exports.
// Exports are disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UseSSL       bool
	URLExpirySec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env      string
	LogLevel string
	Port     string
	Mongo    MongoConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	dbName := getEnv("MONGO_DB", "AAC")
	return &AppConfig{
		Env:      getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		Port:     getEnv("PORT", "8080"),
		Mongo: MongoConfig{
			Host:                     getEnv("MONGO_HOST", ""),
			Port:                     getEnv("MONGO_PORT", "27017"),
			User:                     getEnv("MONGO_USER", ""),
			Password:                 getEnv("MONGO_PASSWORD", ""),
			Name:                     dbName,
			Collection:               getEnv("MONGO_COLLECTION", "animals"),
			AuthSource:               getEnv("MONGO_AUTH_SOURCE", dbName),
			ServerSelectionTimeoutMS: getEnvInt("MONGO_SERVER_SELECTION_TIMEOUT_MS", 4000),
		},
		MinIO: MinIOConfig{
			Endpoint:     getEnv("MINIO_ENDPOINT", ""),
			AccessKey:    getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:    getEnv("MINIO_SECRET_KEY", ""),
			Bucket:       getEnv("MINIO_BUCKET", "shelter-exports"),
			UseSSL:       getEnvBool("MINIO_USE_SSL", false),
			URLExpirySec: getEnvInt("EXPORT_URL_TTL_SEC", 900),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
