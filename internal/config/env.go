package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env/.env.local into the process environment before the
// descriptor is parsed, so ${VAR} references in the YAML resolve. Existing
// process environment variables are never overwritten, and a missing file is
// not an error.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("loaded environment file", "path", path)
			return
		}
	}
}
