package usecase

import (
	"fmt"
	"log/slog"

	"skype-chat-exporter/internal/core/services"
	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/pkg/config"
	"skype-chat-exporter/internal/ports"
)

// ExportConversationUseCase инкапсулирует бизнес-логику преобразования
// одной беседы из файла экспорта в Markdown-документ.
type ExportConversationUseCase struct {
	cfg      *config.Config
	source   ports.DataSource
	parser   ports.Parser
	scanner  ports.MediaScanner
	selector ports.ConversationSelector
	builder  ports.TranscriptBuilder
	exporter ports.Exporter
}

// NewExportConversationUseCase создает новый экземпляр ExportConversationUseCase.
func NewExportConversationUseCase(
	cfg *config.Config,
	source ports.DataSource,
	parser ports.Parser,
	scanner ports.MediaScanner,
	selector ports.ConversationSelector,
	builder ports.TranscriptBuilder,
	exporter ports.Exporter,
) *ExportConversationUseCase {
	return &ExportConversationUseCase{
		cfg:      cfg,
		source:   source,
		parser:   parser,
		scanner:  scanner,
		selector: selector,
		builder:  builder,
		exporter: exporter,
	}
}

// Run выполняет полный цикл: чтение экспорта, выбор беседы, обработка
// сообщений, группировка и экспорт. Пустой экспорт и пустая беседа не
// являются ошибками: печатается сообщение, файл не создается.
func (uc *ExportConversationUseCase) Run() error {
	data, err := uc.source.Fetch()
	if err != nil {
		return fmt.Errorf("не удалось прочитать файл экспорта: %w", err)
	}

	archive, err := uc.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("не удалось разобрать файл экспорта: %w", err)
	}
	slog.Info("Файл экспорта разобран", "conversation_count", len(archive.Conversations))

	if len(archive.Conversations) == 0 {
		fmt.Println("No conversations found.")
		return nil
	}

	media, err := uc.scanner.Scan(uc.cfg.MediaPath())
	if err != nil {
		return fmt.Errorf("не удалось проиндексировать медиа-каталог: %w", err)
	}
	slog.Info("Медиа-каталог проиндексирован", "file_count", len(media))

	choice, err := uc.selector.Select(archive.Conversations)
	if err != nil {
		return fmt.Errorf("не удалось выбрать беседу: %w", err)
	}
	conversation := &archive.Conversations[choice]

	if len(conversation.Messages) == 0 {
		fmt.Println("No messages found.")
		return nil
	}

	slog.Info("Обработка беседы", "id", conversation.ID, "message_count", len(conversation.Messages))

	classifier := services.NewSenderClassifier(archive.UserID)
	converter := services.NewRichTextConverter(media)

	processed := make([]domain.ProcessedMessage, 0, len(conversation.Messages))
	for _, msg := range conversation.Messages {
		processed = append(processed, domain.ProcessedMessage{
			Timestamp:  services.ParseArrivalTime(msg.ArrivalTime),
			SenderID:   msg.From,
			SenderName: classifier.Resolve(msg.From, msg.DisplayName, conversation.ID),
			Content:    converter.Convert(msg.Content),
		})
	}

	blocks := uc.builder.Build(processed)
	slog.Info("Сообщения сгруппированы", "block_count", len(blocks))

	chatName := conversation.DisplayName
	if chatName == "" {
		chatName = fmt.Sprintf("chat_%d", choice)
	}

	if err := uc.exporter.Export(&domain.Transcript{ChatName: chatName, Blocks: blocks}); err != nil {
		return fmt.Errorf("не удалось экспортировать беседу: %w", err)
	}

	slog.Info("Экспорт успешно завершен", "chat", chatName)
	return nil
}
