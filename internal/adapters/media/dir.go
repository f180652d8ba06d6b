package media

import (
	"log/slog"
	"os"
	"strings"

	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// DirScanner реализует интерфейс MediaScanner для индексирования
// медиа-каталога экспорта.
type DirScanner struct{}

// NewDirScanner создает новый экземпляр DirScanner.
func NewDirScanner() ports.MediaScanner {
	return &DirScanner{}
}

// Scan строит индекс файлов каталога: ключ — часть имени файла до первой
// точки, значение — полное имя файла. Отсутствующий или нечитаемый каталог
// дает пустой индекс без ошибки.
func (s *DirScanner) Scan(dir string) (domain.MediaIndex, error) {
	index := domain.MediaIndex{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("Медиа-каталог недоступен", "dir", dir, "error", err)
		return index, nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		base, _, _ := strings.Cut(name, ".")
		index[base] = name
	}

	return index, nil
}
