package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderClassifier(t *testing.T) {
	const (
		userID = "live:alice"
		convID = "19:abcdef@thread.skype"
	)

	t.Run("NewSenderClassifier создает корректный экземпляр", func(t *testing.T) {
		assert.NotNil(t, NewSenderClassifier(userID))
	})

	t.Run("Владелец архива всегда отображается как You", func(t *testing.T) {
		c := NewSenderClassifier(userID)

		assert.Equal(t, "You", c.Resolve(userID, "", convID))
		// Объявленное имя перекрывается
		assert.Equal(t, "You", c.Resolve(userID, "Alice", convID))
	})

	t.Run("Служебные отправители отображаются как System", func(t *testing.T) {
		c := NewSenderClassifier(userID)

		// Идентификатор совпадает с идентификатором беседы
		assert.Equal(t, "System", c.Resolve(convID, "Skype", convID))
		// Регистронезависимое сравнение
		assert.Equal(t, "System", c.Resolve("19:ABCDEF@THREAD.skype", "Skype", convID))
		// Идентификатор треда другой беседы
		assert.Equal(t, "System", c.Resolve("19:other@thread.skype", "Skype", convID))
		// Пустой идентификатор
		assert.Equal(t, "System", c.Resolve("", "Skype", convID))
	})

	t.Run("Обычный отправитель с объявленным именем", func(t *testing.T) {
		c := NewSenderClassifier(userID)
		assert.Equal(t, "Bob", c.Resolve("8:bob", "Bob", convID))
	})

	t.Run("Обычный отправитель без объявленного имени", func(t *testing.T) {
		c := NewSenderClassifier(userID)
		assert.Equal(t, "8:bob", c.Resolve("8:bob", "", convID))
	})
}

func TestIsProbablySystemID(t *testing.T) {
	t.Run("Пустой идентификатор", func(t *testing.T) {
		assert.True(t, IsProbablySystemID("", "19:x@thread.skype"))
	})

	t.Run("Совпадение с идентификатором беседы без учета регистра", func(t *testing.T) {
		assert.True(t, IsProbablySystemID("19:X@Thread.Skype", "19:x@thread.skype"))
	})

	t.Run("Префикс 19: и подстрока @thread", func(t *testing.T) {
		assert.True(t, IsProbablySystemID("19:zzz@thread.v2", "8:bob"))
		assert.True(t, IsProbablySystemID("19:ZZZ@THREAD.V2", "8:bob"))
	})

	t.Run("Префикс 19: без @thread не служебный", func(t *testing.T) {
		assert.False(t, IsProbablySystemID("19:zzz@example.com", "8:bob"))
	})

	t.Run("Обычный идентификатор не служебный", func(t *testing.T) {
		assert.False(t, IsProbablySystemID("8:bob", "19:x@thread.skype"))
		assert.False(t, IsProbablySystemID("live:alice", "19:x@thread.skype"))
	})
}
