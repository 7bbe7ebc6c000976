package firebase

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/neochat"
)

// Environment variables checked before the local config file.
const (
	EnvConfig      = "FIREBASE_CONFIG"
	EnvDatabaseURL = "DATABASE_URL"
)

// Config is the resolved backend configuration.
type Config struct {
	DatabaseURL string
}

// LoadConfig resolves the backend configuration. The FIREBASE_CONFIG
// environment variable (a JSON credentials blob, normally paired with
// DATABASE_URL) wins; otherwise the JSON file at path is consulted for its
// databaseURL field. When neither source exists the error wraps
// [neochat.ErrNotConfigured] and the caller runs offline.
func LoadConfig(path string) (Config, error) {
	if blob := os.Getenv(EnvConfig); blob != "" {
		var cred map[string]any
		if err := json.Unmarshal([]byte(blob), &cred); err != nil {
			return Config{}, fmt.Errorf("firebase: parse %s: %w", EnvConfig, err)
		}
		dbURL := os.Getenv(EnvDatabaseURL)
		if dbURL == "" {
			if s, ok := cred["databaseURL"].(string); ok {
				dbURL = s
			}
		}
		if dbURL == "" {
			return Config{}, fmt.Errorf("firebase: %s is set but no database URL found", EnvConfig)
		}
		return Config{DatabaseURL: dbURL}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("firebase: %w", neochat.ErrNotConfigured)
		}
		return Config{}, fmt.Errorf("firebase: read config: %w", err)
	}
	var file struct {
		DatabaseURL string `json:"databaseURL"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("firebase: parse config %s: %w", path, err)
	}
	if file.DatabaseURL == "" {
		return Config{}, fmt.Errorf("firebase: config %s has no databaseURL", path)
	}
	return Config{DatabaseURL: file.DatabaseURL}, nil
}
