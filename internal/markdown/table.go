package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ecodeclub/ekit/slice"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/render"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderWorkTable(entries []model.WorkExperience) string {
	if len(entries) == 0 {
		return "No work experience yet."
	}
	rows := slice.Map(entries, func(_ int, w model.WorkExperience) []string {
		return []string{w.ID, w.Position, w.Company, render.DateRange(w.StartDate, w.EndDate, w.Current)}
	})
	return renderTable([]string{"ID", "Position", "Company", "Dates"}, rows)
}

func RenderEducationTable(entries []model.Education) string {
	if len(entries) == 0 {
		return "No education yet."
	}
	rows := slice.Map(entries, func(_ int, e model.Education) []string {
		return []string{e.ID, e.Degree, e.Institution, e.EndDate}
	})
	return renderTable([]string{"ID", "Degree", "Institution", "End"}, rows)
}

func RenderProjectTable(entries []model.Project) string {
	if len(entries) == 0 {
		return "No projects yet."
	}
	rows := slice.Map(entries, func(_ int, p model.Project) []string {
		return []string{p.ID, p.Name, strings.Join(p.Technologies, ", ")}
	})
	return renderTable([]string{"ID", "Name", "Technologies"}, rows)
}

func RenderSkillTable(skills []string) string {
	if len(skills) == 0 {
		return "No skills yet."
	}
	rows := slice.Map(skills, func(_ int, s string) []string { return []string{s} })
	return renderTable([]string{"Skill"}, rows)
}

// RenderTemplateTable marks the selected template with an asterisk.
func RenderTemplateTable(templates []model.TemplateInfo, selected model.TemplateID) string {
	rows := slice.Map(templates, func(_ int, t model.TemplateInfo) []string {
		mark := ""
		if t.ID == selected {
			mark = "*"
		}
		return []string{mark, string(t.ID), t.Name, t.Description}
	})
	return renderTable([]string{"", "ID", "Name", "Description"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
