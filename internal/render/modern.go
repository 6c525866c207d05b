package render

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/rogersnm/resumecraft/internal/model"
)

func modern(doc model.Resume) *Page {
	pi := doc.PersonalInfo
	p := &Page{
		Header: Header{
			Name:      displayName(pi),
			Separator: " · ",
		},
	}
	if line := nonEmpty(pi.Email, pi.Phone, pi.Location, pi.Website, pi.LinkedIn, pi.GitHub); len(line) > 0 {
		p.Header.Contact = [][]string{line}
	}

	if doc.Summary != "" {
		p.Sections = append(p.Sections, Section{Kind: KindSummary, Heading: "PROFESSIONAL SUMMARY", Text: doc.Summary})
	}
	if len(doc.WorkExperience) > 0 {
		p.Sections = append(p.Sections, Section{
			Kind:    KindExperience,
			Heading: "WORK EXPERIENCE",
			Entries: slice.Map(doc.WorkExperience, func(_ int, w model.WorkExperience) Entry {
				return Entry{
					Title:       w.Position,
					Subtitle:    join(" | ", w.Company, w.Location),
					Dates:       DateRange(w.StartDate, w.EndDate, w.Current),
					Description: w.Description,
					Bullets:     w.Highlights,
				}
			}),
		})
	}
	if len(doc.Education) > 0 {
		p.Sections = append(p.Sections, Section{
			Kind:    KindEducation,
			Heading: "EDUCATION",
			Entries: slice.Map(doc.Education, func(_ int, e model.Education) Entry {
				gpa := ""
				if e.GPA != "" {
					gpa = "GPA: " + e.GPA
				}
				return Entry{
					Title:       e.Degree,
					Subtitle:    join(" | ", e.Institution, e.Location),
					Detail:      e.Field,
					Dates:       join(" | ", e.EndDate, gpa),
					Description: e.Description,
				}
			}),
		})
	}
	if len(doc.Skills) > 0 {
		p.Sections = append(p.Sections, Section{Kind: KindSkills, Heading: "SKILLS", Text: strings.Join(doc.Skills, " • ")})
	}
	if len(doc.Projects) > 0 {
		p.Sections = append(p.Sections, Section{
			Kind:    KindProjects,
			Heading: "PROJECTS",
			Entries: slice.Map(doc.Projects, func(_ int, pr model.Project) Entry {
				footer := ""
				if len(pr.Technologies) > 0 {
					footer = "Technologies: " + strings.Join(pr.Technologies, ", ")
				}
				return Entry{
					Title:       pr.Name,
					Dates:       projectDates(pr.StartDate, pr.EndDate),
					URL:         pr.URL,
					Description: pr.Description,
					Footer:      footer,
				}
			}),
		})
	}
	return p
}

// projectDates keeps the separator in front of an end date with no start.
func projectDates(start, end string) string {
	if end == "" {
		return start
	}
	return strings.TrimSpace(start + " - " + end)
}
