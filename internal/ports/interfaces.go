package ports

import (
	"skype-chat-exporter/internal/domain"
)

// DataSource определяет интерфейс для получения исходных данных экспорта.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// Parser определяет интерфейс для парсинга данных экспорта.
type Parser interface {
	// Parse преобразует сырые данные в структурированную модель архива.
	Parse(data []byte) (*domain.Archive, error)
}

// MediaScanner определяет интерфейс для построения индекса медиа-файлов.
type MediaScanner interface {
	// Scan индексирует файлы каталога по части имени до первой точки.
	// Отсутствие каталога не является ошибкой.
	Scan(dir string) (domain.MediaIndex, error)
}

// ConversationSelector определяет интерфейс для выбора беседы из списка.
type ConversationSelector interface {
	// Select возвращает индекс выбранной беседы.
	Select(conversations []domain.Conversation) (int, error)
}

// RichTextConverter определяет интерфейс для преобразования разметки
// сообщений в Markdown.
type RichTextConverter interface {
	Convert(content string) string
}

// SenderClassifier определяет интерфейс для определения отображаемого
// имени отправителя сообщения.
type SenderClassifier interface {
	Resolve(senderID, declaredName, conversationID string) string
}

// TranscriptBuilder определяет интерфейс для сортировки, группировки и
// слияния обработанных сообщений.
type TranscriptBuilder interface {
	Build(messages []domain.ProcessedMessage) []domain.SenderBlock
}

// Exporter определяет интерфейс для вывода результата.
type Exporter interface {
	// Export принимает итоговый документ и записывает его.
	Export(transcript *domain.Transcript) error
}
