// Package render turns a resume into a template-specific Page tree and
// encodes that tree as HTML or Markdown.
package render

import (
	"fmt"
	"strings"

	"github.com/rogersnm/resumecraft/internal/model"
)

// Placeholder shown when no name has been entered.
const Placeholder = "Your Name"

// Present replaces the end date of a current position.
const Present = "Present"

type SectionKind string

const (
	KindSummary    SectionKind = "summary"
	KindExperience SectionKind = "experience"
	KindEducation  SectionKind = "education"
	KindSkills     SectionKind = "skills"
	KindProjects   SectionKind = "projects"
)

// Page is the formatted resume. It carries no styling beyond the template id;
// encoders decide how each part looks.
type Page struct {
	Template model.TemplateID
	Header   Header
	Sections []Section
}

type Header struct {
	Name string
	// Contact holds one slice of fragments per line.
	Contact   [][]string
	Separator string
	Centered  bool
}

type Section struct {
	Kind    SectionKind
	Heading string
	// Text is set for prose sections (summary, skills).
	Text    string
	Entries []Entry
}

type Entry struct {
	Title       string
	Subtitle    string
	Detail      string
	Dates       string
	URL         string
	Description string
	Bullets     []string
	Footer      string
}

// Section returns the section of the given kind, if present.
func (p *Page) Section(kind SectionKind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

type layout func(doc model.Resume) *Page

var layouts = map[model.TemplateID]layout{
	model.TemplateModern:  modern,
	model.TemplateClassic: classic,
}

// Render builds the page for doc using the given template. doc is not
// modified.
func Render(doc model.Resume, id model.TemplateID) (*Page, error) {
	l, ok := layouts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no renderer", model.ErrUnknownTemplate, id)
	}
	p := l(doc.Clone())
	p.Template = id
	return p, nil
}

// DateRange formats "start - end". A current position ends at Present; a
// missing end date is left blank.
func DateRange(start, end string, current bool) string {
	if current {
		end = Present
	}
	if start == "" && end == "" {
		return ""
	}
	return strings.TrimSpace(start + " - " + end)
}

func displayName(info model.PersonalInfo) string {
	if strings.TrimSpace(info.FullName) == "" {
		return Placeholder
	}
	return info.FullName
}

// nonEmpty drops blank fragments.
func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func join(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts...), sep)
}
