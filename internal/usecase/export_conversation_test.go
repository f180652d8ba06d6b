package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skype-chat-exporter/internal/adapters/parser"
	"skype-chat-exporter/internal/adapters/source"
	"skype-chat-exporter/internal/core/services"
	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/pkg/config"
	"skype-chat-exporter/internal/ports"
)

func testConfig() *config.Config {
	return &config.Config{
		Export: config.Export{
			Dir:          ".",
			MessagesFile: "messages.json",
			MediaDir:     "media",
			Format:       "markdown",
		},
		Processing: config.Processing{MergeWindowSeconds: 30},
		Logging:    config.Logging{Level: "info"},
	}
}

func newUseCase(data []byte, sel ports.ConversationSelector, exp ports.Exporter) *ExportConversationUseCase {
	cfg := testConfig()
	return NewExportConversationUseCase(
		cfg,
		source.NewMemorySource(data),
		parser.NewJsonParser(),
		&stubScanner{index: domain.MediaIndex{"img1": "img1.png"}},
		sel,
		services.NewTranscriptBuilder(cfg.MergeWindow()),
		exp,
	)
}

const exportFixture = `{
	"userId": "live:alice",
	"conversations": [
		{
			"id": "19:team@thread.skype",
			"displayName": "Team Chat",
			"threadProperties": {"members": "[\"live:alice\", \"8:bob\"]"},
			"MessageList": [
				{
					"from": "live:alice",
					"displayName": "Alice",
					"originalarrivaltime": "2023-01-01T10:00:00Z",
					"content": "<b>hello</b>"
				},
				{
					"from": "live:alice",
					"originalarrivaltime": "2023-01-01T10:00:10Z",
					"content": "again"
				},
				{
					"from": "8:bob",
					"displayName": "Bob",
					"originalarrivaltime": "2023-01-01T10:01:00Z",
					"content": "<URIObject doc_id=\"img1\">pic</URIObject>"
				},
				{
					"from": "19:team@thread.skype",
					"originalarrivaltime": "broken",
					"content": "joined"
				}
			]
		},
		{
			"id": "8:bob",
			"displayName": "",
			"MessageList": [
				{
					"from": "8:bob",
					"originalarrivaltime": "2023-01-01T12:00:00Z",
					"content": "direct"
				}
			]
		}
	]
}`

func TestExportConversationUseCase(t *testing.T) {
	t.Run("Полный цикл экспорта беседы", func(t *testing.T) {
		exp := &captureExporter{}
		uc := newUseCase([]byte(exportFixture), &stubSelector{choice: 0}, exp)

		require.NoError(t, uc.Run())
		require.NotNil(t, exp.transcript)

		assert.Equal(t, "Team Chat", exp.transcript.ChatName)

		blocks := exp.transcript.Blocks
		require.Len(t, blocks, 3)

		// Сообщение без метки времени сортируется первым
		assert.Equal(t, "System", blocks[0].SenderName)
		require.Len(t, blocks[0].Groups, 1)
		assert.Nil(t, blocks[0].Groups[0].Timestamp)
		assert.Equal(t, []string{"joined"}, blocks[0].Groups[0].Contents)

		// Владелец архива: два сообщения в одном окне слияния
		assert.Equal(t, "You", blocks[1].SenderName)
		require.Len(t, blocks[1].Groups, 1)
		assert.Equal(t, []string{"**hello**", "again"}, blocks[1].Groups[0].Contents)

		// Вложение разрешено через индекс медиа-файлов
		assert.Equal(t, "Bob", blocks[2].SenderName)
		require.Len(t, blocks[2].Groups, 1)
		assert.Equal(t, []string{"![img1.png](media/img1.png)"}, blocks[2].Groups[0].Contents)
	})

	t.Run("Беседа без имени получает имя chat_N", func(t *testing.T) {
		exp := &captureExporter{}
		uc := newUseCase([]byte(exportFixture), &stubSelector{choice: 1}, exp)

		require.NoError(t, uc.Run())
		require.NotNil(t, exp.transcript)
		assert.Equal(t, "chat_1", exp.transcript.ChatName)
	})

	t.Run("Ошибка чтения файла экспорта", func(t *testing.T) {
		exp := &captureExporter{}
		uc := newUseCase(nil, &stubSelector{}, exp)

		assert.Error(t, uc.Run())
		assert.Nil(t, exp.transcript)
	})

	t.Run("Ошибка разбора JSON", func(t *testing.T) {
		exp := &captureExporter{}
		uc := newUseCase([]byte(`{invalid`), &stubSelector{}, exp)

		assert.Error(t, uc.Run())
		assert.Nil(t, exp.transcript)
	})

	t.Run("Пустой список бесед не является ошибкой", func(t *testing.T) {
		exp := &captureExporter{}
		uc := newUseCase([]byte(`{"userId": "live:alice", "conversations": []}`), &stubSelector{}, exp)

		require.NoError(t, uc.Run())
		// Файл не записывается
		assert.Nil(t, exp.transcript)
	})

	t.Run("Беседа без сообщений не является ошибкой", func(t *testing.T) {
		data := `{
			"userId": "live:alice",
			"conversations": [
				{"id": "8:bob", "displayName": "Bob", "MessageList": []}
			]
		}`
		exp := &captureExporter{}
		uc := newUseCase([]byte(data), &stubSelector{choice: 0}, exp)

		require.NoError(t, uc.Run())
		assert.Nil(t, exp.transcript)
	})

	t.Run("Ошибка выбора беседы прерывает экспорт", func(t *testing.T) {
		exp := &captureExporter{}
		uc := newUseCase([]byte(exportFixture), &stubSelector{err: fmt.Errorf("invalid choice")}, exp)

		assert.Error(t, uc.Run())
		assert.Nil(t, exp.transcript)
	})

	t.Run("Ошибка экспортера возвращается наружу", func(t *testing.T) {
		exp := &captureExporter{err: fmt.Errorf("disk full")}
		uc := newUseCase([]byte(exportFixture), &stubSelector{choice: 0}, exp)

		assert.Error(t, uc.Run())
	})
}
