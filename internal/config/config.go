// Load envs from .env
// Load YAML config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Search criteria
	Location  string `yaml:"location" env:"COLLECTOR_LOCATION"`
	PageCount int    `yaml:"page_count" env:"COLLECTOR_PAGE_COUNT"`
	//Browser
	Headless bool `yaml:"headless"`
	//Paths
	DatabasePath string `yaml:"database_path"`
	//Optional telegram reporting
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config over the defaults
	cfg := &Config{
		PageCount: 3,
		Headless:  true,
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if location := os.Getenv("COLLECTOR_LOCATION"); location != "" {
		cfg.Location = location
	}

	if pages := os.Getenv("COLLECTOR_PAGE_COUNT"); pages != "" {
		n, err := strconv.Atoi(pages)
		if err != nil || n < 1 {
			log.Fatalf("Invalid COLLECTOR_PAGE_COUNT: %q", pages)
		}
		cfg.PageCount = n
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/jobs.db"
	}

	if cfg.PageCount < 1 {
		cfg.PageCount = 3
	}

	return cfg
}
