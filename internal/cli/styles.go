package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quilljournal/quill/internal/models"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderEntry formats a full entry for terminal display.
func RenderEntry(e models.Entry) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s — %s", e.EntryDate, e.Title)))
	b.WriteString("\n")

	moods := make([]string, 0, 3)
	for _, m := range e.Moods() {
		moods = append(moods, fmt.Sprintf("%s (%s)", m.Name, m.Category))
	}
	b.WriteString(LabelStyle.Render("Mood:  ") + strings.Join(moods, ", ") + "\n")
	if len(e.Tags) > 0 {
		b.WriteString(LabelStyle.Render("Tags:  ") + strings.Join(e.Tags, ", ") + "\n")
	}

	b.WriteString("\n" + e.Content + "\n\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("#%d · %d words · updated %s",
		e.ID, e.WordCount, e.UpdatedAt.Format("2006-01-02 15:04"))))

	return b.String()
}

// RenderEntryLine formats a one-line listing row for an entry.
func RenderEntryLine(e models.Entry) string {
	tags := ""
	if len(e.Tags) > 0 {
		tags = " " + MutedStyle.Render("["+strings.Join(e.Tags, ", ")+"]")
	}
	return fmt.Sprintf("%4d  %s  %-20s %s%s",
		e.ID, e.EntryDate, e.Mood.Name, e.Title, tags)
}
