package config

import "os"

// Server captures process level configuration.
type Server struct {
	Addr     string
	DataFile string
	LogLevel string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:     envOrDefault("CAMPUSDIR_ADDR", ":3000"),
		DataFile: envOrDefault("CAMPUSDIR_DATA_FILE", "schools.json"),
		LogLevel: envOrDefault("CAMPUSDIR_LOG_LEVEL", "info"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
