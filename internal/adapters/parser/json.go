package parser

import (
	"encoding/json"
	"fmt"
	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// JsonParser реализует интерфейс Parser для разбора JSON данных.
type JsonParser struct{}

// NewJsonParser создает новый экземпляр JsonParser.
func NewJsonParser() ports.Parser {
	return &JsonParser{}
}

// Parse преобразует срез байт с JSON в структуру Archive.
func (p *JsonParser) Parse(data []byte) (*domain.Archive, error) {
	var archive domain.Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json: %w", err)
	}
	return &archive, nil
}
