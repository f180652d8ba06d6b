package services

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// Шаблоны разметки сообщений. Сопоставление нежадное, (?s) позволяет телу
// тега занимать несколько строк. Вложенность не анализируется.
var (
	quotePattern       = regexp.MustCompile(`(?s)<quote.*?authorname="(.*?)".*?>(.*?)</quote>`)
	legacyQuotePattern = regexp.MustCompile(`(?s)<legacyquote>.*?</legacyquote>`)
	partListPattern    = regexp.MustCompile(`(?s)<partlist.*?>(.*?)</partlist>`)
	partPattern        = regexp.MustCompile(`(?s)<part.*?identity="(.*?)".*?<name>(.*?)</name>.*?<duration>(.*?)</duration>.*?</part>`)
	addMemberPattern   = regexp.MustCompile(`(?s)<addmember>(.*?)</addmember>`)
	initiatorPattern   = regexp.MustCompile(`(?s)<initiator>(.*?)</initiator>`)
	eventTimePattern   = regexp.MustCompile(`(?s)<eventtime>(.*?)</eventtime>`)
	rosterPattern      = regexp.MustCompile(`(?s)<rosterVersion>(.*?)</rosterVersion>`)
	targetPattern      = regexp.MustCompile(`(?s)<target>(.*?)</target>`)
	emojiPattern       = regexp.MustCompile(`(?s)<ss.*?utf="(.*?)".*?>.*?</ss>`)
	boldPattern        = regexp.MustCompile(`(?s)<b[^>]*>(.*?)</b>`)
	italicPattern      = regexp.MustCompile(`(?s)<i[^>]*>(.*?)</i>`)
	strikePattern      = regexp.MustCompile(`(?s)<s[^>]*>(.*?)</s>`)
)

const docIDAttr = `doc_id="`

// Расширения файлов, которые встраиваются в документ как изображения.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// RichTextConverterImpl реализует интерфейс RichTextConverter.
type RichTextConverterImpl struct {
	media domain.MediaIndex
}

// NewRichTextConverter создает новый экземпляр RichTextConverterImpl
// с индексом медиа-файлов для разрешения вложений.
func NewRichTextConverter(media domain.MediaIndex) ports.RichTextConverter {
	return &RichTextConverterImpl{media: media}
}

// Convert преобразует разметку сообщения в Markdown фиксированной цепочкой
// подстановок. Нераспознанные теги остаются в выводе как есть.
func (c *RichTextConverterImpl) Convert(content string) string {
	// Ссылка на вложение заменяет все содержимое сообщения;
	// учитывается только первое вхождение doc_id.
	if idx := strings.Index(content, docIDAttr); idx >= 0 {
		start := idx + len(docIDAttr)
		if end := strings.Index(content[start:], `"`); end != -1 {
			content = c.mediaLink(content[start : start+end])
		}
	}

	content = quotePattern.ReplaceAllStringFunc(content, convertQuote)
	content = partListPattern.ReplaceAllStringFunc(content, convertPartList)
	content = addMemberPattern.ReplaceAllStringFunc(content, convertAddMember)
	// Смайлы обрабатываются до зачеркивания, иначе <ss> захватит шаблон <s>.
	content = emojiPattern.ReplaceAllString(content, "${1}")

	content = boldPattern.ReplaceAllString(content, "**${1}**")
	content = italicPattern.ReplaceAllString(content, "*${1}*")
	content = strikePattern.ReplaceAllString(content, "~~${1}~~")

	return content
}

// mediaLink возвращает Markdown-ссылку на вложение. Известные изображения
// встраиваются, остальные файлы и неразрешенные идентификаторы
// оформляются как обычные ссылки.
func (c *RichTextConverterImpl) mediaLink(docID string) string {
	fileName, ok := c.media.Lookup(docID)
	if !ok {
		return fmt.Sprintf("[%s](media/%s)", docID, docID)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if imageExtensions[ext] {
		return fmt.Sprintf("![%s](media/%s)", fileName, fileName)
	}
	return fmt.Sprintf("[%s](media/%s)", fileName, fileName)
}

// convertQuote оформляет цитату как блочную цитату Markdown с жирной
// строкой атрибуции. Вложенный тег legacyquote отбрасывается вместе с
// содержимым.
func convertQuote(match string) string {
	m := quotePattern.FindStringSubmatch(match)
	if m == nil {
		return match
	}
	author := m[1]
	text := strings.TrimSpace(legacyQuotePattern.ReplaceAllString(m[2], ""))
	return "> **Quoted from " + author + "**\n> " + strings.ReplaceAll(text, "\n", "\n> ")
}

// convertPartList оформляет сводку завершенного звонка: заголовок и по
// одному пункту на участника с длительностью в секундах.
func convertPartList(match string) string {
	m := partListPattern.FindStringSubmatch(match)
	if m == nil {
		return match
	}

	lines := []string{"**Call ended**"}
	for _, part := range partPattern.FindAllStringSubmatch(m[1], -1) {
		lines = append(lines, fmt.Sprintf("- %s (%ss)", part[2], part[3]))
	}
	return strings.Join(lines, "\n")
}

// convertAddMember оформляет событие добавления участников: заголовок и
// пункты Time / Initiator / Targets / RosterVersion с заглушками для
// отсутствующих полей.
func convertAddMember(match string) string {
	m := addMemberPattern.FindStringSubmatch(match)
	if m == nil {
		return match
	}
	inside := m[1]

	initiator := firstGroup(initiatorPattern, inside, "Unknown")
	eventTime := firstGroup(eventTimePattern, inside, "N/A")
	roster := firstGroup(rosterPattern, inside, "N/A")

	var targets []string
	for _, tm := range targetPattern.FindAllStringSubmatch(inside, -1) {
		targets = append(targets, tm[1])
	}
	targetStr := "No targets"
	if len(targets) > 0 {
		targetStr = strings.Join(targets, ", ")
	}

	lines := []string{
		"**AddMember Event**",
		"- Time: " + eventTime,
		"- Initiator: " + initiator,
		"- Targets: " + targetStr,
		"- RosterVersion: " + roster,
	}
	return strings.Join(lines, "\n")
}

// firstGroup возвращает первую группу первого совпадения или заглушку.
func firstGroup(re *regexp.Regexp, s, fallback string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return fallback
}
