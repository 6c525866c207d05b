package model

import (
	"errors"
	"fmt"
)

type TemplateID string

const (
	TemplateModern       TemplateID = "modern"
	TemplateClassic      TemplateID = "classic"
	TemplateMinimal      TemplateID = "minimal"
	TemplateProfessional TemplateID = "professional"
)

const DefaultTemplate = TemplateModern

var ErrUnknownTemplate = errors.New("unknown template")

type TemplateInfo struct {
	ID          TemplateID
	Name        string
	Description string
}

// minimal and professional are reserved ids with no renderer yet; they are
// never offered for selection.
var selectable = []TemplateInfo{
	{ID: TemplateModern, Name: "Modern", Description: "Clean lines with accent colors"},
	{ID: TemplateClassic, Name: "Classic", Description: "Traditional centered layout"},
}

// Selectable lists the templates a user may pick.
func Selectable() []TemplateInfo {
	return append([]TemplateInfo(nil), selectable...)
}

func LookupTemplate(id TemplateID) (TemplateInfo, bool) {
	for _, t := range selectable {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateInfo{}, false
}

// ParseTemplate accepts only selectable template ids.
func ParseTemplate(s string) (TemplateID, error) {
	if t, ok := LookupTemplate(TemplateID(s)); ok {
		return t.ID, nil
	}
	switch TemplateID(s) {
	case TemplateMinimal, TemplateProfessional:
		return "", fmt.Errorf("%w: %q is reserved and not available yet", ErrUnknownTemplate, s)
	}
	return "", fmt.Errorf("%w: %q (must be one of modern, classic)", ErrUnknownTemplate, s)
}
