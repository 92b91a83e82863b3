package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/calcpad/internal/calc"
)

const (
	gridColumns       = 4
	cellGap           = 1
	framedCellHeight  = 3
	compactCellHeight = 1
	minCellWidth      = 5
	maxCellWidth      = 9

	appPaddingX = 2
	appPaddingY = 1
)

const (
	titleText    = "Calculator"
	badgeBasic   = "Basic"
	badgeSci     = "Scientific"
	overflowMark = "…"
	introMessage = "Arrows move, Enter presses, Tab switches the keypad."
)

var operatorSymbols = map[calc.Operator]string{
	calc.OpAdd:      "+",
	calc.OpSubtract: "−",
	calc.OpMultiply: "×",
	calc.OpDivide:   "÷",
}

var (
	gray600   = lipgloss.Color("#4b5563")
	gray900   = lipgloss.Color("#111827")
	white     = lipgloss.Color("#ffffff")
	yellow500 = lipgloss.Color("#eab308")

	toneColors = map[calc.Tone]lipgloss.Color{
		calc.TonePlain:    gray600,
		calc.ToneDanger:   lipgloss.Color("#ef4444"),
		calc.ToneSoftRed:  lipgloss.Color("#f87171"),
		calc.ToneWarning:  lipgloss.Color("#f97316"),
		calc.ToneOperator: lipgloss.Color("#3b82f6"),
		calc.ToneEquals:   lipgloss.Color("#22c55e"),
		calc.ToneTrig:     lipgloss.Color("#a855f7"),
		calc.ToneInverse:  lipgloss.Color("#c084fc"),
		calc.ToneLog:      lipgloss.Color("#6366f1"),
		calc.ToneLogSoft:  lipgloss.Color("#818cf8"),
		calc.TonePower:    lipgloss.Color("#14b8a6"),
		calc.TonePowSoft:  lipgloss.Color("#2dd4bf"),
		calc.ToneConstant: lipgloss.Color("#ec4899"),
	}
)

var (
	appStyle         = lipgloss.NewStyle().Padding(appPaddingY, appPaddingX)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(white)
	badgeStyle       = lipgloss.NewStyle().Bold(true).Foreground(white).Background(gray600).Padding(0, 1)
	badgeActiveStyle = badgeStyle.Copy().Background(yellow500)
	displayStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray600).Background(gray900).Foreground(white).Bold(true).Padding(0, 1).Align(lipgloss.Right)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Align(lipgloss.Right)
	helperStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cellStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Foreground(white).Bold(true).Align(lipgloss.Center)
	focusedCellStyle = cellStyle.Copy().Border(lipgloss.ThickBorder()).BorderForeground(yellow500).Foreground(yellow500)

	// Compact cells drop the border and carry the tone as the label colour.
	compactCellStyle    = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	compactFocusedStyle = compactCellStyle.Copy().Foreground(gray900).Background(yellow500)
	warningStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316"))
)

func toneColor(tone calc.Tone) lipgloss.Color {
	if color, ok := toneColors[tone]; ok {
		return color
	}
	return gray600
}
