package repository

import "os"

// resolveTableName resolves a DynamoDB table name from the environment, falling back
// to the conventional default when the variable is unset.
func resolveTableName(envKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
