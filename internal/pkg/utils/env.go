package utils

import (
	"log"
	"os"
	"strconv"
)

// lookupEnv treats an empty variable the same as an unset one.
func lookupEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return "", false
	}
	return value, true
}

func GetEnvString(key, defaultValue string) string {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

// GetEnvInt falls back to defaultValue when the variable is not an integer.
// Range checks are left to config validation.
func GetEnvInt(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer %q for %s, using default %d", value, key, defaultValue)
		return defaultValue
	}
	return intValue
}
