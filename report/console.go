package report

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// ConsolePresenter draws errors as bordered boxes on a terminal.
type ConsolePresenter struct {
	mu    sync.Mutex
	w     io.Writer
	title lipgloss.Style
	box   lipgloss.Style
}

// NewConsolePresenter returns a presenter writing to w. Colors are used only
// when w is a terminal that supports them.
func NewConsolePresenter(w io.Writer) *ConsolePresenter {
	r := lipgloss.NewRenderer(w)
	return &ConsolePresenter{
		w: w,
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4444")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFA500")).
			Padding(0, 1),
	}
}

// Present writes one box holding title and message.
func (p *ConsolePresenter) Present(_ context.Context, title, message string) error {
	out := p.box.Render(p.title.Render(title) + "\n\n" + message)

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := fmt.Fprintln(p.w, out); err != nil {
		return pcsxerrors.Classify("console", err)
	}
	return nil
}

var _ Presenter = (*ConsolePresenter)(nil)
