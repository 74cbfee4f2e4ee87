package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Gin     GinConfig     `yaml:"gin"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// APIConfig 遠端 meetup API 設定
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// EventsPath 為列表與單筆查詢共用的路徑段，單筆為 {base}{EventsPath}/{id}
	EventsPath string        `yaml:"events_path"`
	Timeout    time.Duration `yaml:"timeout"`
}

type DisplayConfig struct {
	// Timezone 為卡片與詳細頁固定使用的顯示時區
	Timezone string `yaml:"timezone"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type GinConfig struct {
	Mode string `yaml:"mode"`
}

var AppConfig *Config

// LoadConfig 先讀環境變數，若 MEETUP_CONFIG 指向 YAML 檔則以檔案內容覆寫
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:  GetServerConfig(),
		API:     GetAPIConfig(),
		Display: GetDisplayConfig(),
		Log:     LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		Gin:     GinConfig{Mode: getEnv("GIN_MODE", "release")},
	}

	if path := os.Getenv("MEETUP_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	cfg.Normalize()

	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Addr:         "127.0.0.1:0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			IdleTimeout:  time.Second,
		},
		API: APIConfig{
			BaseURL:    "http://127.0.0.1:0",
			EventsPath: "/events",
			Timeout:    2 * time.Second,
		},
		Display: DisplayConfig{Timezone: "Asia/Kolkata"},
		Log:     LogConfig{Level: "debug"},
		Gin:     GinConfig{Mode: "test"},
	}
	cfg.Normalize()
	return cfg
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         getEnv("SERVER_ADDR", ":8080"),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}
}

func GetAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:    getEnv("MEETUP_API_BASE_URL", "https://meetup-app-backend-chi.vercel.app"),
		EventsPath: getEnv("MEETUP_API_EVENTS_PATH", "/events"),
		Timeout:    getEnvDuration("MEETUP_API_TIMEOUT", 10*time.Second),
	}
}

func GetDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Timezone: getEnv("DISPLAY_TIMEZONE", "Asia/Kolkata"),
	}
}

// Normalize 補齊零值欄位
func (c *Config) Normalize() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://meetup-app-backend-chi.vercel.app"
	}
	if c.API.EventsPath == "" {
		c.API.EventsPath = "/events"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = "Asia/Kolkata"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch c.Gin.Mode {
	case "debug", "release", "test":
	default:
		c.Gin.Mode = "release"
	}
}

// Location 解析顯示時區
func (c DisplayConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// 純數字視為秒數
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
