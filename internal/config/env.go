package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvOutput names the environment variable that overrides the default output
// directory. An explicit -o flag still takes precedence.
const EnvOutput = "SITEGEN_OUTPUT"

// LoadEnv loads a .env file from the working directory if one exists.
// A missing file is fine; any other failure is reported to the caller.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// OutputOverride returns the output directory configured via the environment,
// or an empty string when unset.
func OutputOverride() string {
	return os.Getenv(EnvOutput)
}
