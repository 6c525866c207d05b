package render

import (
	"strings"
)

// Markdown encodes p for terminal display.
func (p *Page) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# " + p.Header.Name + "\n\n")
	for _, line := range p.Header.Contact {
		sb.WriteString(strings.Join(line, p.Header.Separator) + "  \n")
	}

	for _, s := range p.Sections {
		sb.WriteString("\n## " + s.Heading + "\n\n")
		if s.Text != "" {
			sb.WriteString(s.Text + "\n")
		}
		for _, e := range s.Entries {
			sb.WriteString("### " + e.Title)
			if e.Dates != "" {
				sb.WriteString(" (" + e.Dates + ")")
			}
			sb.WriteString("\n\n")
			for _, l := range []string{e.Subtitle, e.Detail} {
				if l != "" {
					sb.WriteString("*" + l + "*  \n")
				}
			}
			if e.URL != "" {
				sb.WriteString(e.URL + "  \n")
			}
			if e.Description != "" {
				sb.WriteString("\n" + e.Description + "\n")
			}
			if len(e.Bullets) > 0 {
				sb.WriteString("\n")
				for _, b := range e.Bullets {
					sb.WriteString("- " + b + "\n")
				}
			}
			if e.Footer != "" {
				sb.WriteString("\n" + e.Footer + "\n")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
