package config

import (
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	Server   ServerConfig
	Web      WebConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig はイベントAPIサーバーの設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// WebConfig はフロントエンドサーバーの設定
type WebConfig struct {
	Port          string
	EventsAPIURL  string
	ClientTimeout time.Duration // 0 はタイムアウトなし
}

// DatabaseConfig はシードデータ読み込み元の設定
// URL が空の場合は組み込みのシードを使う
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
}

// LogConfig はロガー設定
type LogConfig struct {
	Env   string
	Level string
	File  string
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Web: WebConfig{
			Port:          getEnv("WEB_PORT", "3000"),
			EventsAPIURL:  getEnv("EVENTS_API_URL", "http://localhost:5000/events"),
			ClientTimeout: getDurationEnv("CLIENT_TIMEOUT", 0),
		},
		Database: DatabaseConfig{
			URL:          getEnv("EVENTS_DATABASE_URL", ""),
			MaxOpenConns: getIntEnv("EVENTS_DB_MAX_OPEN_CONNS", 1),
		},
		Log: LogConfig{
			Env:   getEnv("APP_ENV", "development"),
			Level: getEnv("LOG_LEVEL", ""),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

// Enabled はDBからシードを読み込むかどうかを返す
func (c *DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// Addr はサーバーの待ち受けアドレスを返す
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}

// Addr はフロントエンドの待ち受けアドレスを返す
func (c *WebConfig) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
