package config // package config loads application configuration from environment variables

import (
    "os" // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Unlike a deployment backed by external
// infrastructure, this service only needs a port, a data directory for
// its JSON files and the obscured admin dashboard path, so every value
// has a sensible default and nothing is fatal when unset.
type Config struct {
    Env       string // application environment (e.g. "dev", "prod")
    Port      string // HTTP port to listen on
    DataDir   string // directory holding tickets.json and admin-access.json
    AdminPath string // path segment under which the admin dashboard is reachable
}

// Load reads configuration values from environment variables and
// returns a Config.  Missing variables fall back to defaults suitable
// for local development.
func Load() Config {
    return Config{
        Env:       getenvDefault("APP_ENV", "dev"),             // environment (dev/test/prod)
        Port:      getenvDefault("APP_PORT", "3001"),           // port to bind the HTTP server
        DataDir:   getenvDefault("DATA_DIR", "data"),           // persisted JSON file directory
        AdminPath: getenvDefault("ADMIN_ACCESS_PATH", "admin"), // admin dashboard path segment
    }
}

// getenvDefault retrieves the value of an environment variable,
// returning the provided default when the variable is unset or empty.
func getenvDefault(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
