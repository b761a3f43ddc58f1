package config

import "os"

// Config holds the process configuration. It is constructed once at
// startup and treated as immutable afterwards.
type Config struct {
	RootDir     string
	Host        string
	Port        string
	CORSOrigins string
}

// Load builds a Config from the environment. CLI flags layered on top by
// the caller take precedence over these values.
func Load() *Config {
	return &Config{
		RootDir:     getEnv("MEDIA_ROOT", ""),
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
