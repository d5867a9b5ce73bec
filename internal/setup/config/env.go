package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads the env file when present. Deployed environments
// inject their variables directly and ship no file.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Printf("error loading env file %s: %v", path, err)
	}
}
