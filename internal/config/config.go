package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	AdminToken string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "chatorder.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	token := os.Getenv("ADMIN_TOKEN")
	if token == "" {
		log.Println("[config] ADMIN_TOKEN unset; admin API is open")
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AdminToken: token}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s ADMIN_TOKEN set=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, token != "")
	return cfg
}
