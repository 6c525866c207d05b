package render

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/rogersnm/resumecraft/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.English)

func classicHeading(s string) string {
	return upper.String(s)
}

func classic(doc model.Resume) *Page {
	pi := doc.PersonalInfo
	p := &Page{
		Header: Header{
			Name:      displayName(pi),
			Separator: " | ",
			Centered:  true,
		},
	}
	for _, line := range [][]string{
		nonEmpty(pi.Email, pi.Phone, pi.Location),
		nonEmpty(pi.Website, pi.LinkedIn, pi.GitHub),
	} {
		if len(line) > 0 {
			p.Header.Contact = append(p.Header.Contact, line)
		}
	}

	if doc.Summary != "" {
		p.Sections = append(p.Sections, Section{Kind: KindSummary, Heading: classicHeading("Summary"), Text: doc.Summary})
	}
	if len(doc.WorkExperience) > 0 {
		p.Sections = append(p.Sections, Section{
			Kind:    KindExperience,
			Heading: classicHeading("Experience"),
			Entries: slice.Map(doc.WorkExperience, func(_ int, w model.WorkExperience) Entry {
				return Entry{
					Title:       w.Position,
					Subtitle:    join(" - ", w.Company, w.Location),
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
			Heading: classicHeading("Education"),
			Entries: slice.Map(doc.Education, func(_ int, e model.Education) Entry {
				title := e.Degree
				if e.Field != "" {
					title += " in " + e.Field
				}
				return Entry{
					Title:       title,
					Subtitle:    join(" - ", e.Institution, e.Location),
					Dates:       join(" | ", e.EndDate, e.GPA),
					Description: e.Description,
				}
			}),
		})
	}
	if len(doc.Skills) > 0 {
		p.Sections = append(p.Sections, Section{Kind: KindSkills, Heading: classicHeading("Skills"), Text: strings.Join(doc.Skills, ", ")})
	}
	if len(doc.Projects) > 0 {
		p.Sections = append(p.Sections, Section{
			Kind:    KindProjects,
			Heading: classicHeading("Projects"),
			Entries: slice.Map(doc.Projects, func(_ int, pr model.Project) Entry {
				return Entry{
					Title:       pr.Name,
					URL:         pr.URL,
					Description: pr.Description,
					Footer:      strings.Join(pr.Technologies, ", "),
				}
			}),
		})
	}
	return p
}
