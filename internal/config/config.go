// Package config loads application settings from environment variables.
//
// # Environment Variables
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//
// ## Typesense
//   - TYPESENSE_HOST: Typesense server host (default: localhost)
//   - TYPESENSE_PORT: Typesense server port (default: 8108)
//   - TYPESENSE_API_KEY: Typesense API key
//   - TYPESENSE_PROTOCOL: http or https (default: http)
//
// ## Records
//   - LOCALINFO_COLLECTION: record collection name (default: localInfoItems)
//   - LOCALINFO_POLL_INTERVAL_SECONDS: subscription snapshot refresh interval (default: 30)
//   - DEFAULT_DISTRICT: district used for the bundled seed records (default: Netrokona)
//   - DEFAULT_UPAZILA: upazila used for the bundled seed records (default: Kendua)
//
// ## Preferences
//   - PREFERENCES_DB_PATH: Badger database directory for preference storage (default: ./data/preferences)
//
// ## Gemini
//   - GEMINI_API_KEY: Google Gemini API key; empty disables embeddings
//   - GEMINI_EMBEDDING_MODEL: embedding model (default: text-embedding-004)
//
// ## Tracing
//   - TRACING_ENABLED: enable OpenTelemetry tracing (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	Collection      string
	PollInterval    time.Duration
	DefaultDistrict string
	DefaultUpazila  string

	PreferencesDBPath string

	GeminiAPIKey         string
	GeminiEmbeddingModel string

	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),

		Collection:      getEnv("LOCALINFO_COLLECTION", "localInfoItems"),
		PollInterval:    time.Duration(getEnvInt("LOCALINFO_POLL_INTERVAL_SECONDS", 30)) * time.Second,
		DefaultDistrict: getEnv("DEFAULT_DISTRICT", "Netrokona"),
		DefaultUpazila:  getEnv("DEFAULT_UPAZILA", "Kendua"),

		PreferencesDBPath: getEnv("PREFERENCES_DB_PATH", "./data/preferences"),

		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiEmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

// TypesenseURL builds the base URL for the Typesense client.
func (c *Config) TypesenseURL() string {
	return c.TypesenseProtocol + "://" + c.TypesenseHost + ":" + c.TypesensePort
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
