package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервисов.
type AppConfig struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	Port        int    `envconfig:"PORT" default:"8080"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	// DataDir — директория данных приложения, в ней живёт журнал удалений.
	// Пустое значение — пер-пользовательская директория конфигурации ОС.
	DataDir string `envconfig:"DATA_DIR"`

	Discord struct {
		BaseURL string        `envconfig:"DISCORD_BASE_URL" default:"https://discord.com/api/v9"`
		Timeout time.Duration `envconfig:"DISCORD_TIMEOUT" default:"15s"`
	} `envconfig:""`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("не удалось определить директорию данных: %v", err)
		}
		cfg.DataDir = filepath.Join(base, "discord-archive")
	}
	return cfg
}
