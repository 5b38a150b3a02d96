package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const placeholder = "Tap Generate"

func (m *model) View() string {
	st := m.ctrl.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render("PassGenie"))
	b.WriteString(" ")
	b.WriteString(badgeStyle.Render(m.labels.Badge))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.labels.Subtitle))
	b.WriteString("\n\n")

	if st.Output == "" {
		b.WriteString(outputStyle.Render(placeholderStyle.Render(placeholder)))
	} else {
		b.WriteString(outputStyle.Render(st.Output))
	}
	b.WriteString("\n")
	b.WriteString(m.strengthView())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Length "))
	b.WriteString(fmt.Sprintf("◀ %s ▶", st.LengthLabel()))
	b.WriteString("\n")
	b.WriteString(m.togglesView())
	b.WriteString("\n\n")

	if items := m.ctrl.HistoryItems(); len(items) > 0 {
		b.WriteString(labelStyle.Render("History"))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString("  ")
			b.WriteString(item.Password)
			b.WriteString("  ")
			b.WriteString(pillStyle.Render(item.Label))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *model) strengthView() string {
	st := m.ctrl.State()
	if st.Strength == nil {
		return labelStyle.Render("Strength: –")
	}
	dot := lipgloss.NewStyle().Foreground(strengthColor(st.Strength.Level)).Render("●")
	return dot + " " + labelStyle.Render("Strength: "+st.Strength.Strength)
}

func (m *model) togglesView() string {
	st := m.ctrl.State()
	parts := make([]string, 0, len(st.Toggles))
	for i, t := range st.Toggles {
		box := "[ ]"
		style := toggleOffStyle
		if t.Active {
			box = "[x]"
			style = toggleOnStyle
		}
		if m.pulsing && m.pulse == t.Class {
			style = togglePulseStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d %s %s", i+1, box, t.Class)))
	}
	return strings.Join(parts, "  ")
}
