package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	sliderWidth   = 24
	strengthWidth = 30
	contentWidth  = 52
	copiedColor   = "#48bb78"
	toastColor    = "#fc8181"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	passwordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6E6E6E")).
			Padding(0, 1)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	copyIdleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	copyDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(copiedColor))
	copyBumpStyle  = copyDoneStyle.Bold(true).Padding(0, 1)
	toastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(toastColor)).Padding(0, 2)
	toastFadeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(toastColor)).Faint(true).Padding(0, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("tuipass"),
		m.renderPassword(),
		m.renderLength(),
		m.renderClasses(),
	}
	if m.hasRating {
		sections = append(sections, m.renderStrength())
	}
	sections = append(sections, m.help.View(m.keys))
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	toasts := m.renderToasts()
	if m.width == 0 || m.height == 0 {
		if toasts == "" {
			return body
		}
		return toasts + "\n" + body
	}
	toastHeight := lipgloss.Height(toasts)
	if toasts == "" {
		toastHeight = 0
	}
	content := lipgloss.Place(m.width, max(1, m.height-toastHeight), lipgloss.Center, lipgloss.Center, body)
	if toasts == "" {
		return content
	}
	return toasts + "\n" + content
}

func (m *Model) renderPassword() string {
	width := contentWidth
	if m.width > 0 {
		width = min(width, max(8, m.width-4))
	}
	text := m.password
	if text == "" {
		text = mutedStyle.Render("no password")
	} else {
		text = runewidth.Truncate(text, width-4, "…")
	}
	box := passwordStyle.Width(width - 2).Render(text)
	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", m.renderCopyButton())
}

func (m *Model) renderCopyButton() string {
	if m.copyState == copyIdle {
		return copyIdleStyle.Render("⧉ copy")
	}
	if m.copyBumped {
		return copyBumpStyle.Render("✓ copied")
	}
	return copyDoneStyle.Render("✓ copied")
}

func (m *Model) renderLength() string {
	return labelStyle.Render("Length ") + renderSlider(m.config.Length, m.config.MinLength, m.config.MaxLength, sliderWidth) +
		" " + valueStyle.Render(fmt.Sprintf("%d", m.config.Length))
}

func renderSlider(value, lo, hi, width int) string {
	pos := 0
	if hi > lo {
		pos = (value - lo) * (width - 1) / (hi - lo)
	}
	pos = max(0, min(width-1, pos))
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func (m *Model) renderClasses() string {
	items := []struct {
		on    bool
		name  string
		short string
	}{
		{m.config.Uppercase, "Uppercase", "1"},
		{m.config.Lowercase, "Lowercase", "2"},
		{m.config.Numbers, "Numbers", "3"},
		{m.config.Symbols, "Symbols", "4"},
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		box := "[ ]"
		if it.on {
			box = "[x]"
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", box, it.name, mutedStyle.Render("("+it.short+")")))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderStrength() string {
	bar := progress.New(
		progress.WithSolidFill(m.rating.Color),
		progress.WithoutPercentage(),
		progress.WithWidth(strengthWidth),
	)
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.rating.Color)).Render(string(m.rating.Label))
	line := labelStyle.Render("Strength ") + bar.ViewAs(float64(m.rating.BarWidth)/100) + " " + label
	desc := lipgloss.NewStyle().Width(contentWidth).Render(m.rating.Description)
	return line + "\n" + mutedStyle.Render(desc)
}

func (m *Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := toastStyle
		if t.fading {
			style = toastFadeStyle
		}
		line := style.Render(t.text)
		if m.width > 0 {
			line = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
