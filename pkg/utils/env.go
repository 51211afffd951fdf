package utils

import "os"

// GetEnvWithDefault returns the environment variable or a default value.
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
