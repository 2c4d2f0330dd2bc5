package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tailModel holds the state for the Bubble Tea tail view.
type tailModel struct {
	dir      string
	filename string
	flags    *TailFlags

	lines        []string
	fileSize     int64
	fileMissing  bool
	paused       bool
	lastUpdate   time.Time
	windowWidth  int
	windowHeight int
	err          error
}

// newTailModel creates a new tail model.
func newTailModel(dir, filename string, flags *TailFlags) tailModel {
	return tailModel{
		dir:        dir,
		filename:   filename,
		flags:      flags,
		lastUpdate: time.Now(),
	}
}

// Init implements the Bubble Tea init method.
func (m tailModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.loadFileCmd(),
	)
}

// Update implements the Bubble Tea update method.
func (m tailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ":
			m.paused = !m.paused
			return m, nil

		case "r":
			return m, m.loadFileCmd()
		}

	case tickMsg:
		if !m.paused {
			return m, tea.Batch(
				m.tickCmd(),
				m.loadFileCmd(),
			)
		}
		return m, m.tickCmd()

	case fileLoadedMsg:
		m.lines = msg.lines
		m.fileSize = msg.size
		m.fileMissing = msg.missing
		m.lastUpdate = time.Now()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View implements the Bubble Tea view method.
func (m tailModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit", m.err)
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the title line and file stats.
func (m tailModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("scratchlog tail")

	info := fmt.Sprintf("%s | %d lines | %s",
		filepath.Join(m.dir, m.filename),
		len(m.lines),
		formatSize(m.fileSize),
	)

	status := "LIVE"
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	if m.paused {
		status = "PAUSED"
		statusStyle = statusStyle.Foreground(lipgloss.Color("196"))
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		"  ",
		info,
		"  ",
		statusStyle.Render(status),
	)

	line2 := fmt.Sprintf("Last update: %s | Refresh: %v",
		m.lastUpdate.Format("15:04:05"),
		m.flags.RefreshRate,
	)

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2, "")
}

// renderBody renders the visible tail of the file with entry framing
// highlighted.
func (m tailModel) renderBody() string {
	if m.fileMissing {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("\n  Waiting for " + m.filename + " to appear...\n")
	}

	if len(m.lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("\n  File is empty. Waiting for entries...\n")
	}

	maxLines := m.flags.MaxLines
	if maxLines <= 0 {
		maxLines = m.windowHeight - 6 // Header and footer
		if maxLines < 1 {
			maxLines = 1
		}
	}

	start := 0
	if len(m.lines) > maxLines {
		start = len(m.lines) - maxLines
	}

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	rows := make([]string, 0, len(m.lines)-start)
	for _, line := range m.lines[start:] {
		switch {
		case isSeparatorLine(line):
			rows = append(rows, separatorStyle.Render(line))
		case strings.HasPrefix(line, "> "):
			rows = append(rows, labelStyle.Render(line))
		default:
			rows = append(rows, line)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the control instructions.
func (m tailModel) renderFooter() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("Controls: [Space] Pause/Resume | [r] Refresh | [q] Quit")
}

// isSeparatorLine reports whether a line is an entry separator (a run
// of dashes).
func isSeparatorLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	return strings.Count(line, "-") == len(line)
}

// formatSize formats the file size for display.
func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1fK", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1fM", float64(size)/(1024*1024))
	}
}

// tickMsg is sent every refresh interval.
type tickMsg time.Time

// tickCmd creates a tick command.
func (m tailModel) tickCmd() tea.Cmd {
	return tea.Tick(m.flags.RefreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fileLoadedMsg is sent when the log file has been re-read.
type fileLoadedMsg struct {
	lines   []string
	size    int64
	missing bool
}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// loadFileCmd re-reads the tailed file.
func (m tailModel) loadFileCmd() tea.Cmd {
	path := filepath.Join(m.dir, m.filename)

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fileLoadedMsg{missing: true}
			}
			return errMsg{err: fmt.Errorf("failed to read %s: %w", path, err)}
		}

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		return fileLoadedMsg{lines: lines, size: int64(len(data))}
	}
}
