// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
	x509tree "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/tree"
)

// pane identifies which half of the screen owns keyboard focus.
type pane int

const (
	paneList pane = iota
	paneDetails
)

// detailsPageStep is how many lines pgup/pgdown move the details pane.
const detailsPageStep = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Padding(0, 1)

	blurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is the Bubble Tea model backing the certificate browser.
type model struct {
	items  []x509tree.DisplayItem
	cursor int

	focus         pane
	detailsOffset int

	width  int
	height int

	// switchToText is set when the user presses 't' to leave the TUI and
	// get the plain text rendering instead.
	switchToText bool
}

// newModel flattens the forest into the display list the browser navigates.
func newModel(forest *x509tree.Forest) model {
	return model{items: x509tree.Flatten(forest)}
}

// Init implements [tea.Model]. The browser has no startup work.
func (m model) Init() tea.Cmd { return nil }

// Update implements [tea.Model].
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "t":
			m.switchToText = true
			return m, tea.Quit

		case "tab":
			if m.focus == paneList {
				m.focus = paneDetails
			} else {
				m.focus = paneList
			}
			return m, nil

		case "up", "k":
			if m.focus == paneDetails {
				if m.detailsOffset > 0 {
					m.detailsOffset--
				}
				return m, nil
			}
			if m.cursor > 0 {
				m.cursor--
				m.detailsOffset = 0
			}
			return m, nil

		case "down", "j":
			if m.focus == paneDetails {
				m.detailsOffset++
				return m, nil
			}
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.detailsOffset = 0
			}
			return m, nil

		case "pgup":
			m.detailsOffset -= detailsPageStep
			if m.detailsOffset < 0 {
				m.detailsOffset = 0
			}
			return m, nil

		case "pgdown":
			m.detailsOffset += detailsPageStep
			return m, nil

		case "home":
			if m.focus == paneList {
				m.cursor = 0
			}
			m.detailsOffset = 0
			return m, nil
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m model) View() string {
	if len(m.items) == 0 {
		return "No certificates in chain\n"
	}

	listPane := m.renderList()
	detailsPane := m.renderDetails()

	listStyle, detailsStyle := blurredBorderStyle, focusedBorderStyle
	if m.focus == paneList {
		listStyle, detailsStyle = focusedBorderStyle, blurredBorderStyle
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(listPane),
		detailsStyle.Render(detailsPane),
	)

	help := helpStyle.Render("↑/↓ navigate · tab focus · pgup/pgdn scroll · t text mode · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Certificate Chain"),
		body,
		help,
	)
}

// renderList builds the left pane listing every certificate with its
// validity and chain status colors.
func (m model) renderList() string {
	var b strings.Builder

	for i, item := range m.items {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(item.ValidityStatus.TermColor()))
		chainStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(item.ValidationStatus.TermColor()))

		line := fmt.Sprintf("%s %s %s",
			item.DisplayName,
			statusStyle.Render(item.ValidityStatus.Text()),
			chainStyle.Render(item.ValidationStatus.Text()),
		)

		if i == m.cursor {
			line = selectedStyle.Render(line)
		}

		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderDetails builds the right pane: the verbose report for the selected
// certificate, scrolled to the current offset.
func (m model) renderDetails() string {
	item := m.items[m.cursor]

	report := x509certinfo.FormatVerbose(item.Record)
	report += fmt.Sprintf("\nChain Status: %s\nValidity: %s\n",
		item.ValidationStatus.Text(), item.ValidityStatus.Text())

	lines := strings.Split(report, "\n")

	offset := m.detailsOffset
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}

	visible := lines[offset:]
	if m.height > 8 && len(visible) > m.height-8 {
		visible = visible[:m.height-8]
	}

	return strings.Join(visible, "\n")
}

// Run launches the interactive browser for the given forest. It returns
// true when the user asked for the plain text rendering instead.
func Run(forest *x509tree.Forest) (bool, error) {
	p := tea.NewProgram(newModel(forest), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(model); ok {
		return m.switchToText, nil
	}
	return false, nil
}
