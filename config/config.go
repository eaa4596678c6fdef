package config

import (
	"os"
	"strconv"
)

// GetEnv returns the environment variable value or the fallback when unset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt returns the environment variable parsed as int, or the fallback.
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret is shared by the login handler and the auth middleware so the
// signing and the verification key can never drift apart.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "baf-airmen-dev-secret"))
}
