package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	FeedURL string
	LogFile string
}

func Load() Config {
	// Optional .env in the working directory; real env wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "saleslens.db" // sqlite file in project root
	}
	feed := os.Getenv("FEED_URL")
	if feed == "" {
		feed = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./saleslens.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, FeedURL: feed, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s FEED_URL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.FeedURL, cfg.LogFile)
	return cfg
}
