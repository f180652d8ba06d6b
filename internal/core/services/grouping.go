package services

import (
	"sort"
	"time"

	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// TranscriptBuilderImpl реализует интерфейс TranscriptBuilder.
type TranscriptBuilderImpl struct {
	mergeWindow time.Duration
}

// NewTranscriptBuilder создает новый экземпляр TranscriptBuilderImpl
// с заданным окном слияния сообщений.
func NewTranscriptBuilder(mergeWindow time.Duration) ports.TranscriptBuilder {
	return &TranscriptBuilderImpl{mergeWindow: mergeWindow}
}

// Build сортирует сообщения по времени, разбивает их на блоки подряд
// идущих сообщений одного отправителя и сливает близкие по времени
// сообщения внутри блока в общие группы.
func (b *TranscriptBuilderImpl) Build(messages []domain.ProcessedMessage) []domain.SenderBlock {
	if len(messages) == 0 {
		return nil
	}

	sorted := make([]domain.ProcessedMessage, len(messages))
	copy(sorted, messages)

	// Стабильная сортировка; сообщения без метки времени идут первыми.
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].Timestamp, sorted[j].Timestamp
		if ti == nil {
			return tj != nil
		}
		if tj == nil {
			return false
		}
		return ti.Before(*tj)
	})

	var blocks []domain.SenderBlock
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || sorted[i].SenderID != sorted[start].SenderID {
			blocks = append(blocks, domain.SenderBlock{
				// Имя блока берется у первого сообщения.
				SenderName: sorted[start].SenderName,
				Groups:     b.merge(sorted[start:i]),
			})
			start = i
		}
	}

	return blocks
}

// merge сливает подряд идущие сообщения блока в группы. Расстояние
// меряется от первого сообщения текущей группы; отсутствие метки времени
// у любой из сторон закрывает группу.
func (b *TranscriptBuilderImpl) merge(block []domain.ProcessedMessage) []domain.MergedGroup {
	groups := make([]domain.MergedGroup, 0, 1)
	groupStart := block[0].Timestamp
	contents := []string{block[0].Content}

	for _, next := range block[1:] {
		if groupStart != nil && next.Timestamp != nil && next.Timestamp.Sub(*groupStart) < b.mergeWindow {
			contents = append(contents, next.Content)
			continue
		}
		groups = append(groups, domain.MergedGroup{Timestamp: groupStart, Contents: contents})
		groupStart = next.Timestamp
		contents = []string{next.Content}
	}

	return append(groups, domain.MergedGroup{Timestamp: groupStart, Contents: contents})
}
