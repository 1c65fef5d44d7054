package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnv loads variables from a local .env file, falling back to
// ~/.promptstash.env. Missing files are fine; real configuration errors show
// up later when viper reads the environment.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		home, err := os.UserHomeDir()
		if err == nil {
			_ = godotenv.Load(filepath.Join(home, "."+appDirName+".env"))
		}
	}
}
