package env

import (
	"os"

	"certverify.io/infrastructure/logger"
	"github.com/joho/godotenv"
)

var RequiredKeys = []string{
	"PORT",
	"GIN_MODE",
	"DB_URL",
	"DB_NAME",
	"REDIS_ADDR",
	"JWT_SIGNING_KEY",
	"JWT_ISSUER",
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logger.Info("error loading env variables")
	}
	missing := MissingKeys()
	if len(missing) > 0 {
		logger.Warning("required env variables are missing", logger.LoggerOptions{
			Key:  "keys",
			Data: missing,
		})
	}
}

func MissingKeys() []string {
	missing := []string{}
	for _, key := range RequiredKeys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// GetOrDefault reads key, falling back when it is unset.
func GetOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
