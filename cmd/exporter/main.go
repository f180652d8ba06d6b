package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"skype-chat-exporter/internal/adapters/exporter"
	"skype-chat-exporter/internal/adapters/media"
	"skype-chat-exporter/internal/adapters/parser"
	"skype-chat-exporter/internal/adapters/selector"
	"skype-chat-exporter/internal/adapters/source"
	"skype-chat-exporter/internal/core/services"
	"skype-chat-exporter/internal/pkg/config"
	"skype-chat-exporter/internal/ports"
	"skype-chat-exporter/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}

// run инкапсулирует всю логику инициализации и запуска приложения.
func run() error {
	var exportDir string
	flag.StringVar(&exportDir, "dir", "", "Export directory (overrides config)")
	flag.Parse()

	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		// Логгер еще не инициализирован, выводим в stderr
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if exportDir != "" {
		cfg.Export.Dir = exportDir
	}

	// 2. Инициализация логгера
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	// Логи идут в stderr, чтобы не мешать списку бесед и приглашению
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// 3. Валидация конфигурации (после инициализации логгера)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Инициализация зависимостей
	dataSource := source.NewFileSource(cfg.MessagesPath())
	jsonParser := parser.NewJsonParser()
	mediaScanner := media.NewDirScanner()
	cliSelector := selector.NewCliSelector()
	builder := services.NewTranscriptBuilder(cfg.MergeWindow())

	var exp ports.Exporter
	switch cfg.Export.Format {
	case "console":
		exp = exporter.NewConsoleExporter()
	default:
		exp = exporter.NewMarkdownExporter(cfg.Export.Dir)
	}

	// 5. Запуск сценария экспорта
	uc := usecase.NewExportConversationUseCase(cfg, dataSource, jsonParser, mediaScanner, cliSelector, builder, exp)
	return uc.Run()
}
