package selector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/xerrors"

	"skype-chat-exporter/internal/domain"
	"skype-chat-exporter/internal/ports"
)

// CliSelector реализует интерфейс ConversationSelector: печатает список
// бесед и читает индекс выбранной беседы со стандартного ввода.
type CliSelector struct {
	in      *bufio.Reader
	out     io.Writer
	stdinfd int
}

// NewCliSelector создает новый экземпляр CliSelector поверх stdin/stdout.
func NewCliSelector() ports.ConversationSelector {
	return &CliSelector{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		stdinfd: int(os.Stdin.Fd()),
	}
}

// Select печатает нумерованный список бесед с участниками и возвращает
// индекс, введенный пользователем. Некорректный ввод или индекс вне
// диапазона — ошибка.
func (s *CliSelector) Select(conversations []domain.Conversation) (int, error) {
	if len(conversations) == 0 {
		return 0, xerrors.New("список бесед пуст")
	}

	// Выравнивание имен по самому широкому
	width := 0
	for i := range conversations {
		if w := runewidth.StringWidth(conversations[i].Title()); w > width {
			width = w
		}
	}

	for i := range conversations {
		c := &conversations[i]
		fmt.Fprintf(s.out, "[%d] %s | Members: %s\n", i, runewidth.FillRight(c.Title(), width), c.MemberSummary())
	}

	// Приглашение печатается только при интерактивном вводе
	if term.IsTerminal(s.stdinfd) {
		fmt.Fprintf(s.out, "Enter conversation index (0..%d): ", len(conversations)-1)
	}

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, xerrors.Errorf("failed to read selection: %w", err)
	}

	input := strings.TrimSpace(line)
	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, xerrors.Errorf("invalid choice %q", input)
	}
	if choice < 0 || choice >= len(conversations) {
		return 0, xerrors.Errorf("invalid choice %d: index out of range", choice)
	}

	return choice, nil
}
