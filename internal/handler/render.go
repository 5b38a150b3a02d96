package handler

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the five HTML special characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// HistoryItem is one rendered history row.
type HistoryItem struct {
	Label    string
	Password string
}

// HistoryLabel names a history row: "Latest" for the newest, then "#2", "#3"...
func HistoryLabel(index int) string {
	if index == 0 {
		return "Latest"
	}
	return fmt.Sprintf("#%d", index+1)
}

// HistoryItems labels newest-first history entries.
func HistoryItems(entries []string) []HistoryItem {
	items := make([]HistoryItem, len(entries))
	for i, p := range entries {
		items[i] = HistoryItem{Label: HistoryLabel(i), Password: p}
	}
	return items
}

// HistoryItems returns the controller's history rows newest first.
func (c *Controller) HistoryItems() []HistoryItem {
	return HistoryItems(c.state.History.Entries())
}

// RenderHistoryHTML renders the controller's history as HTML.
func (c *Controller) RenderHistoryHTML() string {
	return RenderHistoryHTML(c.HistoryItems())
}

// RenderHistoryHTML renders items as a list of <li> elements with every
// password escaped.
func RenderHistoryHTML(items []HistoryItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<li class="history-item"><span>%s</span><span class="pill-label">%s</span></li>`,
			EscapeHTML(item.Password), item.Label)
		b.WriteByte('\n')
	}
	return b.String()
}

// Labels are the environment dependent texts of the UI.
type Labels struct {
	Badge    string
	Subtitle string
}

// LabelsFor picks the labels for an embedded or standalone host.
func LabelsFor(embedded bool) Labels {
	if embedded {
		return Labels{
			Badge:    "Embedded",
			Subtitle: "Always-with-you password magic inside your editor.",
		}
	}
	return Labels{
		Badge:    "Terminal",
		Subtitle: "Strong, random passwords in one keystroke.",
	}
}
