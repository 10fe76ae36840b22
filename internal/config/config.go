package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
	"time"
)

// Object store drivers accepted by OBJECT_STORE_DRIVER.
const (
	DriverS3    = "s3"
	DriverRedis = "redis"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	DB struct {
		URL          string
		Host         string
		Port         int
		User         string
		Password     string
		Name         string
		SSLMode      string
		MaxOpenConns int
	}

	ObjectStore struct {
		Driver string
	}

	S3 struct {
		Endpoint        string
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		Bucket          string
		Key             string
		Timeout         time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "messages-api")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", getEnv("HOST", "0.0.0.0"))
	cfg.API.Port = getEnv("API_PORT", getEnv("PORT", "8000"))

	// DB
	cfg.DB.URL = getEnv("DATABASE_URL", "")
	cfg.DB.Host = getEnv("DB_HOST", "db")
	cfg.DB.Port = getInt("DB_PORT", 5432)
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.DB.Name = getEnv("DB_NAME", "messages")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.MaxOpenConns = getInt("DB_MAX_OPEN_CONNS", 5)

	// Object store
	cfg.ObjectStore.Driver = strings.ToLower(getEnv("OBJECT_STORE_DRIVER", DriverS3))

	cfg.S3.Endpoint = strings.TrimRight(getEnv("AWS_ENDPOINT_URL", "http://localstack:4566"), "/")
	cfg.S3.Region = getEnv("AWS_REGION", "us-east-1")
	cfg.S3.AccessKeyID = getEnv("AWS_ACCESS_KEY_ID", "test")
	cfg.S3.SecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", "test")
	cfg.S3.Bucket = getEnv("S3_BUCKET", "test-bucket")
	cfg.S3.Key = getEnv("S3_KEY", "timestamp.txt")
	cfg.S3.Timeout = getDuration("S3_TIMEOUT", 30*time.Second)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	return cfg
}

// Addr is the host:port pair the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.API.Host, c.API.Port)
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// PostgresDSN returns DATABASE_URL when it is set, otherwise a key/value DSN
// assembled from the DB_* variables.
func (c *Config) PostgresDSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
