package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is built once at process start and passed by reference to the
// components that need it. There is no global settings singleton and no
// hot reload.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Memory   MemoryConfig
	Docs     DocumentConfig
}

type AppConfig struct {
	Port                string
	APIPrefix           string
	Environment         string
	LogFilePath         string
	CorsAllowedOrigins  string
	UserRegisteredTopic string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	SecretKey                string
	AccessTokenExpireMinutes int
}

type AIConfig struct {
	GeminiAPIKey string
	Model        string
	Stream       bool
	Persona      string
}

type MemoryConfig struct {
	BaseURL string
}

type DocumentConfig struct {
	Path  string
	Clean bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                getEnv("PORT", "8000"),
			APIPrefix:           getEnv("API_V1_STR", "/api/v1"),
			Environment:         getEnv("GO_ENV", "development"),
			LogFilePath:         getEnv("LOG_FILE_PATH", "hub.log"),
			CorsAllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			UserRegisteredTopic: getEnv("USER_REGISTERED_TOPIC", "user.registered"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DATABASE_URL", "./hub.db"),
		},
		Auth: AuthConfig{
			SecretKey:                getEnv("SECRET_KEY", "your-secret-key"),
			AccessTokenExpireMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		},
		Ai: AIConfig{
			GeminiAPIKey: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Model:        getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
			Stream:       getEnvAsBool("GEMINI_STREAM", false),
			Persona:      getEnv("PROMPT_PERSONA", ""),
		},
		Memory: MemoryConfig{
			BaseURL: getEnv("MEMORY_SERVICE_URL", "http://localhost:8000"),
		},
		Docs: DocumentConfig{
			Path:  getEnv("DOCUMENTS_PATH", "regulations_data/raw"),
			Clean: getEnvAsBool("DOCUMENT_CLEAN", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
