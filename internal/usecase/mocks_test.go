package usecase

import (
	"skype-chat-exporter/internal/domain"
)

// stubScanner возвращает заранее заданный индекс медиа-файлов.
type stubScanner struct {
	index domain.MediaIndex
}

func (s *stubScanner) Scan(dir string) (domain.MediaIndex, error) {
	if s.index == nil {
		return domain.MediaIndex{}, nil
	}
	return s.index, nil
}

// stubSelector возвращает заранее заданный выбор беседы.
type stubSelector struct {
	choice int
	err    error
}

func (s *stubSelector) Select(conversations []domain.Conversation) (int, error) {
	return s.choice, s.err
}

// captureExporter запоминает переданный документ вместо записи.
type captureExporter struct {
	transcript *domain.Transcript
	err        error
}

func (e *captureExporter) Export(transcript *domain.Transcript) error {
	if e.err != nil {
		return e.err
	}
	e.transcript = transcript
	return nil
}
