package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBPath  string
	LogFile string
}

// Load reads config from the environment, with a best-effort .env overlay
// for local development.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./instance/niknaks.db"
	}
	logFile := os.Getenv("LOG_FILE") // empty disables the file tee

	cfg := Config{Port: port, DBPath: dbPath, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_PATH=%s LOG_FILE=%s", cfg.Port, cfg.DBPath, cfg.LogFile)
	return cfg
}
