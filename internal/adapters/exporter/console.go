package exporter

import (
	"fmt"

	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// ConsoleExporter реализует интерфейс Exporter для вывода документа в консоль.
type ConsoleExporter struct{}

// NewConsoleExporter создает новый экземпляр ConsoleExporter.
func NewConsoleExporter() ports.Exporter {
	return &ConsoleExporter{}
}

// Export выводит итоговый документ в консоль, файл не создается.
func (e *ConsoleExporter) Export(transcript *domain.Transcript) error {
	fmt.Print(renderTranscript(transcript))
	return nil
}
