package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Archive представляет корневую структуру файла экспорта.
type Archive struct {
	UserID        string         `json:"userId"`
	Conversations []Conversation `json:"conversations"`
}

// Conversation представляет одну беседу из экспорта.
type Conversation struct {
	ID               string            `json:"id"`
	DisplayName      string            `json:"displayName"`
	ThreadProperties *ThreadProperties `json:"threadProperties"`
	Messages         []RawMessage      `json:"MessageList"`
}

// ThreadProperties содержит свойства группового треда.
type ThreadProperties struct {
	Members MemberList `json:"members"`
}

// MemberList представляет список участников беседы.
// В экспорте поле может быть массивом строк или строкой с JSON-массивом
// внутри; обе формы разрешаются один раз при декодировании.
type MemberList []string

// UnmarshalJSON принимает обе формы поля members.
// Ошибки декодирования не фатальны: список остается пустым.
func (m *MemberList) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*m = direct
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		var nested []string
		if err := json.Unmarshal([]byte(encoded), &nested); err == nil {
			*m = nested
			return nil
		}
	}

	*m = nil
	return nil
}

// Title возвращает отображаемое имя беседы или "Unnamed", если оно отсутствует.
func (c *Conversation) Title() string {
	if c.DisplayName == "" {
		return "Unnamed"
	}
	return c.DisplayName
}

// MemberSummary возвращает участников беседы одной строкой для списка выбора.
func (c *Conversation) MemberSummary() string {
	if c.ThreadProperties == nil || len(c.ThreadProperties.Members) == 0 {
		return "No members listed"
	}
	return strings.Join(c.ThreadProperties.Members, ", ")
}

// RawMessage представляет одно сообщение в том виде, в котором оно
// хранится в экспорте. После чтения не изменяется.
type RawMessage struct {
	From        string `json:"from"`
	DisplayName string `json:"displayName"`
	ArrivalTime string `json:"originalarrivaltime"`
	Content     string `json:"content"`
}

// MediaIndex отображает идентификатор документа (часть имени файла до
// первой точки) на фактическое имя файла в медиа-каталоге.
type MediaIndex map[string]string

// Lookup возвращает имя файла для идентификатора документа.
func (m MediaIndex) Lookup(docID string) (string, bool) {
	name, ok := m[docID]
	return name, ok
}

// ProcessedMessage представляет сообщение после нормализации времени,
// определения отправителя и преобразования разметки.
// Это наша внутренняя модель, а не структура из JSON.
type ProcessedMessage struct {
	// Локальное время прибытия; nil, если метка времени не разобрана.
	Timestamp *time.Time
	// Исходный идентификатор отправителя.
	SenderID string
	// Отображаемое имя, определенное классификатором.
	SenderName string
	// Содержимое сообщения, уже преобразованное в Markdown.
	Content string
}

// MergedGroup представляет несколько подряд идущих сообщений одного
// отправителя, объединенных в один блок с общей меткой времени.
type MergedGroup struct {
	// Метка времени первого сообщения группы; nil при ее отсутствии.
	Timestamp *time.Time
	Contents  []string
}

// SenderBlock представляет максимальную последовательность сообщений
// одного отправителя в хронологическом порядке.
type SenderBlock struct {
	SenderName string
	Groups     []MergedGroup
}

// Transcript представляет итоговый документ для экспортера.
type Transcript struct {
	// Имя беседы для заголовка и имени файла.
	ChatName string
	Blocks   []SenderBlock
}
