package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weightlog/internal/app"
)

const (
	chartHeight = 8
	colWidth    = 9
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	dayStyle     = lipgloss.NewStyle().Bold(true)
	savedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("weightlog"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCard())
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n\n")

	window := app.BuildChartWindow(m.journal, m.session.Selected())
	b.WriteString(renderChart(window))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("drag to swipe · shift+←/→ day · ctrl+t today · esc quit"))
	return b.String()
}

// renderCard draws the single-day entry card, shifted by the live drag
// offset so a horizontal swipe visibly follows the pointer.
func (m Model) renderCard() string {
	day := m.session.Selected()
	card := cardStyle.Render(
		dayStyle.Render(day.Label()) + "\n\n" + m.input.View(),
	)
	if m.dragX != 0 {
		pad := int(m.dragX)
		if pad < 0 {
			pad = 0 // leftward drags clip at the margin
		}
		card = indentBlock(card, pad)
	}
	return card
}

func (m Model) renderNotice() string {
	switch m.session.Notice() {
	case app.NoticeSaved:
		return savedStyle.Render("saved")
	case app.NoticeInvalid:
		return errorStyle.Render("weight must be a number up to 1400")
	case app.NoticeBlocked:
		return errorStyle.Render("can't go past today")
	default:
		return " "
	}
}

// renderChart draws the 7-day window as bars against the window's axis
// bounds. Absent days stay blank; the axis is the upper-third scaling the
// window builder produced, so flat series sit high in the frame.
func renderChart(w app.ChartWindow) string {
	span := w.YMax - w.YMin

	heights := make([]int, len(w.Values))
	for i, v := range w.Values {
		if v == nil {
			heights[i] = 0
			continue
		}
		h := int(float64(chartHeight) * (*v - w.YMin) / span)
		if h < 1 {
			h = 1
		}
		if h > chartHeight {
			h = chartHeight
		}
		heights[i] = h
	}

	var b strings.Builder
	for row := chartHeight; row >= 1; row-- {
		switch row {
		case chartHeight:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%7.1f ┤", w.YMax)))
		case 1:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%7.1f ┤", w.YMin)))
		default:
			b.WriteString(axisStyle.Render("        │"))
		}
		for _, h := range heights {
			cell := " "
			if h >= row {
				cell = "█"
			}
			b.WriteString(barStyle.Render(centerCell(cell)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render("        └" + strings.Repeat("─", colWidth*len(w.Values))))
	b.WriteString("\n         ")
	last := len(w.Labels) - 1
	for i, label := range w.Labels {
		style := labelStyle
		if i == last {
			style = currentStyle
		}
		b.WriteString(style.Render(padCell(label)))
	}
	b.WriteString("\n")
	return b.String()
}

func centerCell(s string) string {
	left := (colWidth - 1) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", colWidth-left-1)
}

func padCell(s string) string {
	if len(s) >= colWidth {
		return s[:colWidth]
	}
	return s + strings.Repeat(" ", colWidth-len(s))
}

func indentBlock(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
