package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	GigaChat GigaChatConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

func Load() (*Config, error) {
	// A .env file is optional; plain environment variables work for
	// Docker/K8s deployments.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "voyagr"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
