// Package config предоставляет управление конфигурацией приложения
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Export содержит конфигурацию каталога экспорта
type Export struct {
	Dir          string `json:"dir" yaml:"dir"`
	MessagesFile string `json:"messages_file" yaml:"messages_file"`
	MediaDir     string `json:"media_dir" yaml:"media_dir"`
	Format       string `json:"format" yaml:"format"` // markdown, console
}

// Processing содержит конфигурацию обработки
type Processing struct {
	MergeWindowSeconds int `json:"merge_window_seconds" yaml:"merge_window_seconds"`
}

// Logging содержит конфигурацию логирования
type Logging struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// Config содержит конфигурацию приложения
type Config struct {
	Export     Export     `json:"export" yaml:"export"`
	Processing Processing `json:"processing" yaml:"processing"`
	Logging    Logging    `json:"logging" yaml:"logging"`
}

// LoadConfig загружает конфигурацию приложения из переменных окружения, .env файла или config.yml
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла, если он существует
	if err := godotenv.Load(); err != nil {
		// Если .env файла не существует, это нормально, мы будем полагаться на переменные окружения или config.yml
	}

	// Попытка загрузки из config.yml сначала
	cfg, err := loadFromYAML("config.yml")
	if err != nil {
		// Если загрузка YAML не удалась, используем переменные окружения
		cfg, err = loadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("не удалось загрузить конфигурацию из env: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// loadFromYAML загружает конфигурацию из YAML-файла
func loadFromYAML(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}

	return &cfg, nil
}

// loadFromEnv загружает конфигурацию из переменных окружения
func loadFromEnv() (*Config, error) {
	windowStr := getEnv("MERGE_WINDOW_SECONDS", strconv.Itoa(DefaultMergeWindowSeconds))
	window, err := strconv.Atoi(windowStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый MERGE_WINDOW_SECONDS: %w", err)
	}

	return &Config{
		Export: Export{
			Dir:          getEnv("EXPORT_DIR", DefaultExportDir),
			MessagesFile: getEnv("MESSAGES_FILE", DefaultMessagesFile),
			MediaDir:     getEnv("MEDIA_DIR", DefaultMediaDir),
			Format:       getEnv("EXPORT_FORMAT", DefaultExportFormat),
		},
		Processing: Processing{
			MergeWindowSeconds: window,
		},
		Logging: Logging{
			Level: getEnv("LOG_LEVEL", DefaultLogLevel),
		},
	}, nil
}

// applyDefaults заполняет незаданные поля значениями по умолчанию
func (c *Config) applyDefaults() {
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
	if c.Export.MessagesFile == "" {
		c.Export.MessagesFile = DefaultMessagesFile
	}
	if c.Export.MediaDir == "" {
		c.Export.MediaDir = DefaultMediaDir
	}
	if c.Export.Format == "" {
		c.Export.Format = DefaultExportFormat
	}
	if c.Processing.MergeWindowSeconds == 0 {
		c.Processing.MergeWindowSeconds = DefaultMergeWindowSeconds
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// MessagesPath возвращает путь к файлу экспорта
func (c *Config) MessagesPath() string {
	return filepath.Join(c.Export.Dir, c.Export.MessagesFile)
}

// MediaPath возвращает путь к медиа-каталогу экспорта
func (c *Config) MediaPath() string {
	return filepath.Join(c.Export.Dir, c.Export.MediaDir)
}

// MergeWindow возвращает окно слияния сообщений как длительность
func (c *Config) MergeWindow() time.Duration {
	return time.Duration(c.Processing.MergeWindowSeconds) * time.Second
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	if c.Export.MessagesFile == "" {
		return fmt.Errorf("export.messages_file не может быть пустым")
	}

	switch c.Export.Format {
	case "markdown", "console":
		// all good
	default:
		return fmt.Errorf("export.format должен быть одним из: markdown, console")
	}

	if c.Processing.MergeWindowSeconds <= 0 {
		return fmt.Errorf("processing.merge_window_seconds должно быть положительным целым числом")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// all good
	default:
		return fmt.Errorf("logging.level должен быть одним из: debug, info, warn, error")
	}

	return nil
}

// getEnv извлекает значение переменной окружения или возвращает значение по умолчанию, если она не установлена
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
