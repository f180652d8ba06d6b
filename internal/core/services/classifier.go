package services

import (
	"strings"

	"skype-chat-exporter/internal/ports"
)

// SenderClassifierImpl реализует интерфейс SenderClassifier.
type SenderClassifierImpl struct {
	userID string
}

// NewSenderClassifier создает новый экземпляр SenderClassifierImpl
// для архива с указанным идентификатором владельца.
func NewSenderClassifier(userID string) ports.SenderClassifier {
	return &SenderClassifierImpl{userID: userID}
}

// Resolve определяет отображаемое имя отправителя. Владелец архива всегда
// отображается как "You", служебные отправители — как "System"; обе метки
// перекрывают объявленное имя.
func (c *SenderClassifierImpl) Resolve(senderID, declaredName, conversationID string) string {
	if senderID == c.userID {
		return "You"
	}
	if IsProbablySystemID(senderID, conversationID) {
		return "System"
	}
	if declaredName != "" {
		return declaredName
	}
	return senderID
}

// IsProbablySystemID сообщает, похож ли идентификатор отправителя на
// служебный: пустой идентификатор, совпадение с идентификатором беседы
// или идентификатор треда вида "19:...@thread...".
func IsProbablySystemID(senderID, conversationID string) bool {
	if senderID == "" {
		return true
	}

	senderLower := strings.ToLower(senderID)
	convLower := strings.ToLower(conversationID)

	if senderLower == convLower {
		return true
	}
	if strings.HasPrefix(senderLower, "19:") && strings.Contains(senderLower, "@thread") {
		return true
	}
	return false
}
