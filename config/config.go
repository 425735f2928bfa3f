package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup.
type Config struct {
	MongoURL  string
	DBName    string
	JWTSecret string
	Port      string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
	SESEmail      string
}

// Load reads .env (if present) and the process environment. MONGODB_URL and
// JWT_SECRET are required; AWS settings are optional and disable the photo
// upload / welcome email paths when absent.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := &Config{
		MongoURL:      os.Getenv("MONGODB_URL"),
		DBName:        getEnv("DB_NAME", "ethiopian_food_db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          getEnv("PORT", "8080"),
		AWSRegion:     getEnv("S3_REGION", os.Getenv("AWS_REGION")),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
		SESEmail:      os.Getenv("SES_EMAIL"),
	}

	if cfg.MongoURL == "" {
		log.Fatal("MONGODB_URL not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
