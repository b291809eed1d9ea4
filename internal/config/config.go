package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	Driver        string
	DbHOST        string
	DbPORT        string
	DbUSER        string
	DbPASSWORD    string
	DbNAME        string
	DbSSLMODE     string
	MigrationPath string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Auth struct {
	JWTSecretKey string
	Issuer       string
}

type Feed struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Config struct {
	ServerPort         int
	LogLevel           string
	DB                 DB
	MinIO              MinIO
	Auth               Auth
	Feed               Feed
	CORSAllowedOrigins []string
	MaxUploadSize      int64
	ShutdownTimeout    time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, fallback []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		Driver:        getEnv("DB_DRIVER", "postgres"),
		DbHOST:        getEnv("DB_HOST", "localhost"),
		DbPORT:        getEnv("DB_PORT", "5432"),
		DbUSER:        getEnv("DB_USER", "postgres"),
		DbPASSWORD:    getEnv("DB_PASSWORD", "password"),
		DbNAME:        getEnv("DB_NAME", "blogsphere"),
		DbSSLMODE:     getEnv("DB_SSLMODE", "disable"),
		MigrationPath: getEnv("DB_MIGRATIONS", "migrations/001_create_tables.sql"),
	}
}

func LoadMinIO() MinIO {
	endpoint := getEnv("MINIO_ENDPOINT", "localhost:9000")
	useSSL := getEnvBool("MINIO_USE_SSL", false)

	publicURL := strings.TrimSuffix(getEnv("MINIO_PUBLIC_URL", ""), "/")
	if publicURL == "" {
		publicURL = "http://" + endpoint
		if useSSL {
			publicURL = "https://" + endpoint
		}
	}

	return MinIO{
		Endpoint:   endpoint,
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     useSSL,
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  publicURL,
	}
}

func LoadFeed() Feed {
	feed := Feed{
		DefaultPageSize: getEnvAsInt("FEED_DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvAsInt("FEED_MAX_PAGE_SIZE", 100),
	}
	if feed.MaxPageSize < 1 {
		feed.MaxPageSize = 100
	}
	if feed.DefaultPageSize < 1 || feed.DefaultPageSize > feed.MaxPageSize {
		feed.DefaultPageSize = 10
	}
	return feed
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 8080),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DB:         LoadDB(),
		MinIO:      LoadMinIO(),
		Auth: Auth{
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
			Issuer:       getEnv("JWT_ISSUER", ""),
		},
		Feed:               LoadFeed(),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxUploadSize:      parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		ShutdownTimeout:    parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}
