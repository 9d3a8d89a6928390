package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config collects everything main needs to wire the service.
type Config struct {
	Addr         string
	AllowOrigins string

	MongoURI       string
	MongoDB        string
	ConnectTimeout time.Duration

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string
	UploadFolder     string
}

// Load reads .env (when present) and resolves the configuration from
// environment variables. Defaults match the original deployment: the
// "map-reports" database and a CORS origin for the Next.js frontend.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using system environment variables")
	}

	return Config{
		Addr:         getenv("ADDR", ":3005"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "http://localhost:3000"),

		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "map-reports"),
		ConnectTimeout: getdur("MONGO_CONNECT_TIMEOUT", 15*time.Second),

		CloudinaryCloud:  getenv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryKey:    getenv("CLOUDINARY_API_KEY", ""),
		CloudinarySecret: getenv("CLOUDINARY_API_SECRET", ""),
		UploadFolder:     getenv("CLOUDINARY_FOLDER", "fixmystreet-reports"),
	}
}

// getenv returns the trimmed env var value or default.
func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}
