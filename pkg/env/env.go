// Package env reads raw environment variables for the few settings
// needed before the envconfig-backed configuration is parsed, such as
// the log output format.
package env

import "os"

// Get looks up key and falls back when it is unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
