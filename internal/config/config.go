package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the working directory or its
// parent, if one exists. Variables already set in the environment win. Safe to call repeatedly.
// It returns the file that was loaded, or "" when none was found.
func LoadEnv() string {
	var loaded string
	once.Do(func() {
		loaded = loadEnvFrom(".env", filepath.Join("..", ".env"))
	})
	return loaded
}

func loadEnvFrom(candidates ...string) string {
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}
