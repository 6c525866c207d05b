package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/resumecraft/internal/export"
	"github.com/rogersnm/resumecraft/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	toastBase   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	toastStyles = map[export.Severity]lipgloss.Style{
		export.SeverityInfo:        toastBase.BorderForeground(lipgloss.Color("12")),
		export.SeveritySuccess:     toastBase.BorderForeground(lipgloss.Color("10")),
		export.SeverityDestructive: toastBase.BorderForeground(lipgloss.Color("9")),
	}
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}

// RenderValidation lists each invalid field with its message.
func RenderValidation(err *model.ValidationError) string {
	var sb strings.Builder
	for _, f := range err.Fields {
		sb.WriteString(errorStyle.Render(f.Field+":") + " " + f.Message + "\n")
	}
	return sb.String()
}

// fields builds "label: value" lines, skipping empty values.
func fields(pairs ...string) []string {
	var out []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out = append(out, RenderField(pairs[i], pairs[i+1]))
		}
	}
	return out
}

func RenderPersonal(info model.PersonalInfo, summary string) string {
	title := info.FullName
	if title == "" {
		title = "(no name)"
	}
	out := RenderEntityHeader(title, fields(
		"Email", info.Email,
		"Phone", info.Phone,
		"Location", info.Location,
		"Website", info.Website,
		"LinkedIn", info.LinkedIn,
		"GitHub", info.GitHub,
	))
	if summary != "" {
		out += "\n" + summary + "\n"
	}
	return out
}

func RenderWork(w model.WorkExperience) string {
	end := w.EndDate
	if w.Current {
		end = currentStyle.Render("current")
	}
	out := RenderEntityHeader(w.Position+" at "+w.Company, fields(
		"ID", w.ID,
		"Location", w.Location,
		"Start", w.StartDate,
		"End", end,
	))
	for _, h := range w.Highlights {
		out += "  - " + h + "\n"
	}
	if w.Description != "" {
		out += "\n" + w.Description + "\n"
	}
	return out
}

func RenderEducation(e model.Education) string {
	out := RenderEntityHeader(e.Degree+", "+e.Institution, fields(
		"ID", e.ID,
		"Field", e.Field,
		"Location", e.Location,
		"Start", e.StartDate,
		"End", e.EndDate,
		"GPA", e.GPA,
	))
	if e.Description != "" {
		out += "\n" + e.Description + "\n"
	}
	return out
}

func RenderProject(p model.Project) string {
	out := RenderEntityHeader(p.Name, fields(
		"ID", p.ID,
		"URL", p.URL,
		"Start", p.StartDate,
		"End", p.EndDate,
		"Technologies", strings.Join(p.Technologies, ", "),
	))
	if p.Description != "" {
		out += "\n" + p.Description + "\n"
	}
	return out
}

// Toaster prints export notifications as bordered boxes.
type Toaster struct {
	W io.Writer
}

var _ export.Notifier = (*Toaster)(nil)

func (t *Toaster) Notify(n export.Notification) {
	style, ok := toastStyles[n.Severity]
	if !ok {
		style = toastBase
	}
	title := lipgloss.NewStyle().Bold(true).Render(n.Title)
	fmt.Fprintln(t.W, style.Render(title+"\n"+n.Description))
}
