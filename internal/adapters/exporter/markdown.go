package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skype-chat-exporter/internal/core/services"
	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// MarkdownExporter реализует интерфейс Exporter для записи документа
// в Markdown-файл.
type MarkdownExporter struct {
	dir string
}

// NewMarkdownExporter создает новый экземпляр MarkdownExporter,
// записывающий файлы в указанный каталог.
func NewMarkdownExporter(dir string) ports.Exporter {
	return &MarkdownExporter{dir: dir}
}

// Export записывает документ в файл "<имя беседы>.md" (пробелы заменяются
// подчеркиваниями). Существующий файл перезаписывается.
func (e *MarkdownExporter) Export(transcript *domain.Transcript) error {
	outName := strings.ReplaceAll(transcript.ChatName, " ", "_") + ".md"
	outPath := filepath.Join(e.dir, outName)

	if err := os.WriteFile(outPath, []byte(renderTranscript(transcript)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Exported to %s\n", outName)
	return nil
}

// renderTranscript строит текст итогового документа: заголовок, затем для
// каждой группы жирная строка с отправителем и временем и содержимое с
// отступом в два пробела. Блоки разных отправителей разделяются
// дополнительной пустой строкой.
func renderTranscript(transcript *domain.Transcript) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Chat Export - %s\n\n", transcript.ChatName)

	for idx, block := range transcript.Blocks {
		for _, group := range block.Groups {
			if group.Timestamp != nil {
				fmt.Fprintf(&b, "**%s  %s:**\n", block.SenderName, services.FormatLocal(*group.Timestamp))
			} else {
				fmt.Fprintf(&b, "**%s  [No Timestamp]:**\n", block.SenderName)
			}

			for _, text := range group.Contents {
				for _, line := range strings.Split(text, "\n") {
					b.WriteString("  " + line + "\n")
				}
			}
			b.WriteString("\n")
		}

		if idx < len(transcript.Blocks)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
