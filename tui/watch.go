// File: watch.go
// Role: the `ergmee watch` live convergence monitor: tails a running
// task's theta stream (fsnotify) and renders the latest row in a table,
// then on exit renders a glamour markdown summary and offers to copy it
// to the clipboard. Grounded in vanderheijden86-beadwork's
// pkg/watcher/watcher.go (fsnotify-over-directory tailing) and
// pkg/ui/model.go's bubbletea+clipboard wiring.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/ergmee/plot"
)

func openReadOnly(path string) (*os.File, error) { return os.Open(path) }

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	styleHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type fileChangedMsg struct{}
type watchErrMsg struct{ err error }

// watchModel is the bubbletea model backing `ergmee watch`.
type watchModel struct {
	path  string
	ch    <-chan struct{}
	watch *fsnotify.Watcher
	tbl   table.Model
	last  *plot.Series
	err   error
	quit  bool
}

// NewWatchProgram builds the tea.Program that tails path.
func NewWatchProgram(path string) (*tea.Program, error) {
	m, err := newWatchModel(path)
	if err != nil {
		return nil, err
	}

	return tea.NewProgram(m), nil
}

func newWatchModel(path string) (*watchModel, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tui: creating watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()

		return nil, fmt.Errorf("tui: watching %s: %w", dir, err)
	}

	ch := make(chan struct{}, 1)
	go tailEvents(fsw, path, ch)

	cols := []table.Column{{Title: "t", Width: 8}, {Title: "AcceptanceRate", Width: 16}}
	tbl := table.New(table.WithColumns(cols), table.WithFocused(false), table.WithHeight(1))

	return &watchModel{path: path, ch: ch, watch: fsw, tbl: tbl}, nil
}

func tailEvents(fsw *fsnotify.Watcher, path string, ch chan<- struct{}) {
	target := filepath.Base(path)
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case ch <- struct{}{}:
			default:
			}
		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch

		return fileChangedMsg{}
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.ch), m.reload())
}

func (m *watchModel) reload() tea.Cmd {
	return func() tea.Msg {
		f, err := openReadOnly(m.path)
		if err != nil {
			return watchErrMsg{err: err}
		}
		defer f.Close()

		s, err := plot.Parse(f)
		if err != nil && err != plot.ErrEmptyStream {
			return watchErrMsg{err: err}
		}

		return seriesMsg{series: s}
	}
}

type seriesMsg struct{ series *plot.Series }

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true

			return m, tea.Quit
		}
	case fileChangedMsg:
		return m, tea.Batch(m.reload(), waitForChange(m.ch))
	case seriesMsg:
		if msg.series != nil {
			m.last = msg.series
			m.rebuildTable()
		}
	case watchErrMsg:
		m.err = msg.err
	}

	return m, nil
}

func (m *watchModel) rebuildTable() {
	if m.last == nil || len(m.last.T) == 0 {
		return
	}
	cols := make([]table.Column, 0, len(m.last.Columns)+1)
	cols = append(cols, table.Column{Title: "t", Width: 8})
	for _, name := range m.last.Columns {
		cols = append(cols, table.Column{Title: name, Width: 14})
	}

	last := len(m.last.T) - 1
	row := make(table.Row, 0, len(cols))
	row = append(row, fmt.Sprintf("%d", m.last.T[last]))
	for _, name := range m.last.Columns {
		row = append(row, fmt.Sprintf("%.6g", m.last.Values[name][last]))
	}

	m.tbl = table.New(table.WithColumns(cols), table.WithRows([]table.Row{row}), table.WithFocused(false), table.WithHeight(1))
}

func (m *watchModel) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("ergmee watch — %s", m.path)))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("waiting for stream: %v\n", m.err))
	} else if m.last == nil || len(m.last.T) == 0 {
		b.WriteString("waiting for first row...\n")
	} else {
		b.WriteString(m.tbl.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleHint.Render("q to quit"))

	return b.String()
}

// Summary renders the final observed row as a glamour markdown report
// (spec-adjacent convenience: mirrors the theta stream, not a new
// statistical computation). Returns "" if nothing was ever observed.
func (m *watchModel) Summary() string {
	if m.last == nil || len(m.last.T) == 0 {
		return ""
	}
	last := len(m.last.T) - 1
	var b strings.Builder
	fmt.Fprintf(&b, "# Convergence summary\n\n")
	fmt.Fprintf(&b, "Stream: `%s`\n\n", m.path)
	fmt.Fprintf(&b, "Last iteration: **%d**\n\n", m.last.T[last])
	fmt.Fprintf(&b, "| effect | value |\n|---|---|\n")
	for _, name := range m.last.Columns {
		fmt.Fprintf(&b, "| %s | %.6g |\n", name, m.last.Values[name][last])
	}

	return b.String()
}

// RenderSummary renders md through glamour's terminal renderer, falling
// back to raw markdown if glamour cannot render (e.g. non-TTY output).
func RenderSummary(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}

	return out
}

// CopyToClipboard copies text via atotto/clipboard, returning an error
// the caller can report (no clipboard utility found, headless session).
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Close stops the underlying fsnotify watcher; call after the program
// returns.
func (m *watchModel) Close() error {
	if m.watch == nil {
		return nil
	}

	return m.watch.Close()
}

// pollFallbackInterval documents the case bare fsnotify misses: network
// filesystems where inotify events don't propagate. Not implemented as
// a fallback here — watch is a diagnostics convenience, and a stalled
// display is a visible, low-stakes failure mode.
const pollFallbackInterval = 2 * time.Second
