package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Geocoding  GeocodingConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	ElevenLabs ElevenLabsConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	StoryCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

// GeocodingConfig - настройки клиента Nominatim
type GeocodingConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout int
}

// OpenAIConfig - настройки OpenAI (генерация текста и TTS)
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TTSModel       string
	RequestTimeout int
}

// GeminiConfig - настройки резервного AI-провайдера Gemini
type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout int
}

// ElevenLabsConfig - настройки основного TTS-провайдера
type ElevenLabsConfig struct {
	APIKey         string
	BaseURL        string
	ModelID        string
	RequestTimeout int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			StoryCacheTTL:   time.Duration(viper.GetInt("STORY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geocoding: GeocodingConfig{
			BaseURL:        viper.GetString("GEOCODING_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODING_USER_AGENT"),
			RequestTimeout: viper.GetInt("GEOCODING_REQUEST_TIMEOUT"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         viper.GetString("OPENAI_API_KEY"),
			BaseURL:        viper.GetString("OPENAI_BASE_URL"),
			Model:          viper.GetString("OPENAI_MODEL"),
			TTSModel:       viper.GetString("OPENAI_TTS_MODEL"),
			RequestTimeout: viper.GetInt("OPENAI_REQUEST_TIMEOUT"),
		},
		Gemini: GeminiConfig{
			APIKey:         viper.GetString("GOOGLE_AI_API_KEY"),
			BaseURL:        viper.GetString("GEMINI_BASE_URL"),
			Model:          viper.GetString("GEMINI_MODEL"),
			RequestTimeout: viper.GetInt("GEMINI_REQUEST_TIMEOUT"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:         viper.GetString("ELEVENLABS_API_KEY"),
			BaseURL:        viper.GetString("ELEVENLABS_BASE_URL"),
			ModelID:        viper.GetString("ELEVENLABS_MODEL_ID"),
			RequestTimeout: viper.GetInt("ELEVENLABS_REQUEST_TIMEOUT"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.StoryCacheTTL == 0 {
		cfg.Cache.StoryCacheTTL = 10 * time.Minute
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = "map-memoir-backend"
	}
	if cfg.Geocoding.RequestTimeout == 0 {
		cfg.Geocoding.RequestTimeout = 10
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}
	if cfg.OpenAI.TTSModel == "" {
		cfg.OpenAI.TTSModel = "tts-1"
	}
	if cfg.OpenAI.RequestTimeout == 0 {
		cfg.OpenAI.RequestTimeout = 60
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash-exp"
	}
	if cfg.Gemini.RequestTimeout == 0 {
		cfg.Gemini.RequestTimeout = 60
	}
	if cfg.ElevenLabs.BaseURL == "" {
		cfg.ElevenLabs.BaseURL = "https://api.elevenlabs.io/v1"
	}
	if cfg.ElevenLabs.ModelID == "" {
		cfg.ElevenLabs.ModelID = "eleven_multilingual_v2"
	}
	if cfg.ElevenLabs.RequestTimeout == 0 {
		cfg.ElevenLabs.RequestTimeout = 60
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
