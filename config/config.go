package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort string
	HOST    string

	// Storage Settings
	DatabasePath string
	DataDir      string // legacy spreadsheet workbooks live here
	UploadDir    string
	SecurityLog  string

	// JWT Settings
	JWTSecret     string
	JWTExpiration string
}

func LoadConfig() *Config {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	config := &Config{
		AppPort: getEnv("PORT", "8080"),
		HOST:    getEnv("HOST", ""),

		DatabasePath: getEnv("DATABASE_PATH", "data/shop.db"),
		DataDir:      getEnv("DATA_DIR", "data"),
		UploadDir:    getEnv("UPLOAD_DIR", "static/uploads"),
		SecurityLog:  getEnv("SECURITY_LOG", "data/security_log.csv"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiration: getEnv("JWT_EXPIRES_IN", "72h"),
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
