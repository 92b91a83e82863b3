package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/calcpad/internal/calc"
)

// View renders framed cells when they fit the window and falls back to
// compact one-line cells otherwise.
func (m *model) View() string {
	m.layout.cellHeight = framedCellHeight
	view := m.render()
	if m.layout.overflows(lipgloss.Height(view)) {
		m.layout.cellHeight = compactCellHeight
		view = m.render()
	}
	m.layout.viewHeight = lipgloss.Height(view)
	return view
}

func (m *model) render() string {
	width := m.layout.width()
	top := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(width),
		m.displayView(width),
		m.pendingView(width),
	)
	// One blank line separates the top block from the grid.
	m.layout.gridTop = appPaddingY + lipgloss.Height(top) + 1

	body := strings.Join([]string{top, m.gridView(), m.footerView(width)}, "\n\n")
	return appStyle.Render(body)
}

func (m *model) headerView(width int) string {
	title := titleStyle.Render(titleText)
	style := badgeStyle
	if m.state.Scientific {
		style = badgeActiveStyle
	}
	badge := style.Render(m.modeLabel())
	gap := width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	m.layout.badgeX = appPaddingX + lipgloss.Width(title) + gap
	m.layout.badgeWidth = lipgloss.Width(badge)
	return title + strings.Repeat(" ", gap) + badge
}

func (m *model) displayView(width int) string {
	inner := width - 4
	return displayStyle.Width(width - 2).Render(fitDisplay(m.state.Display, inner))
}

// fitDisplay keeps the rightmost characters of text, marking the cut.
func fitDisplay(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	return overflowMark + text[len(text)-width+1:]
}

func (m *model) pendingView(width int) string {
	line := ""
	if m.state.HasOperand {
		if symbol, ok := operatorSymbols[m.state.Operator]; ok {
			line = calc.FormatNumber(m.state.Operand) + " " + symbol
		}
	}
	line = truncate.StringWithTail(line, uint(width), overflowMark)
	return pendingStyle.Width(width).Render(line)
}

func (m *model) gridView() string {
	rows := make([]string, 0, m.layout.rows())
	for start := 0; start < len(m.buttons); start += gridColumns {
		end := start + gridColumns
		if end > len(m.buttons) {
			end = len(m.buttons)
		}
		cells := make([]string, 0, 2*gridColumns)
		for idx := start; idx < end; idx++ {
			if idx > start {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}
			cells = append(cells, m.cellView(idx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *model) cellView(idx int) string {
	button := m.buttons[idx]
	if m.layout.compact() {
		style := compactCellStyle.Copy().Foreground(toneColor(button.Tone))
		if idx == m.focus {
			style = compactFocusedStyle
		}
		return style.Width(m.layout.cellOuterWidth()).Render(button.Label)
	}
	style := cellStyle.Copy().BorderForeground(toneColor(button.Tone))
	if idx == m.focus {
		style = focusedCellStyle
	}
	return style.Width(m.layout.cellWidth).Render(button.Label)
}

func (m *model) footerView(width int) string {
	parts := []string{}
	if m.layout.tooNarrow() {
		warning := fmt.Sprintf("Needs %d columns to show every key.", minWindowWidth())
		parts = append(parts, warningStyle.Render(wordwrap.String(warning, width)))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(wordwrap.String(m.infoMessage, width)))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}
