package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string // "development" or "production"
	LogLevel         string
	MongoURI         string
	MongoDB          string
	JWTSecret        string // Secret key for signing session tokens
	BcryptCost       int
	CORSOrigin       string // Frontend origin allowed to send credentials
	CloudinaryURL    string // cloudinary://<api_key>:<api_secret>@<cloud_name>
	CloudinaryFolder string // Folder scope for every uploaded image
	UploadsDir       string // Legacy local uploads directory, served statically
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:             getEnv("PORT", "4000"),
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "booking-app"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		BcryptCost:       getEnvInt("BCRYPT_COST", 10),
		CORSOrigin:       getEnv("CORS_ORIGIN", "https://travel-booking-app-front-end.vercel.app"),
		CloudinaryURL:    getEnv("CLOUDINARY_URL", ""),
		CloudinaryFolder: getEnv("CLOUDINARY_FOLDER", "folder_name"),
		UploadsDir:       getEnv("UPLOADS_DIR", "./uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
