package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Redis     Redis
	Storage   Storage
	LLM       LLM
	Recording Recording
	AppEnv    string
	LogLevel  string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Storage struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// LLM holds the critique provider settings. Provider is "gemini" or "openai".
type LLM struct {
	Provider     string
	GeminiApiKey string
	OpenAIApiKey string
	TextModel    string
	VisionModel  string
}

type Recording struct {
	IdleTTL time.Duration
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORAGE_BUCKET", "interview-recordings")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("RECORDING_IDLE_TTL", "30m")
}

func NewConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("Error reading .env file")
	}

	setDefaults()
	viper.AutomaticEnv()

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Storage.Bucket = viper.GetString("STORAGE_BUCKET")
	config.Storage.Region = viper.GetString("STORAGE_REGION")
	config.Storage.Endpoint = viper.GetString("STORAGE_ENDPOINT")
	config.Storage.PublicBaseURL = viper.GetString("STORAGE_PUBLIC_BASE_URL")

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.OpenAIApiKey = viper.GetString("OPENAI_API_KEY")
	config.LLM.TextModel = viper.GetString("TEXT_MODEL")
	config.LLM.VisionModel = viper.GetString("VISION_MODEL")

	config.Recording.IdleTTL = viper.GetDuration("RECORDING_IDLE_TTL")

	log.Info().
		Str("port", config.Server.Port).
		Str("env", config.AppEnv).
		Str("db_host", config.Database.Host).
		Str("bucket", config.Storage.Bucket).
		Str("llm_provider", config.LLM.Provider).
		Bool("gemini_key_set", config.LLM.GeminiApiKey != "").
		Bool("openai_key_set", config.LLM.OpenAIApiKey != "").
		Msg("Config loaded")
	return &config, nil
}
