package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid input field, keyed by its json name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when an entry cannot be committed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Message returns the message for field, or "" if the field is valid.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

var messages = map[string]string{
	"fullName":    "Full name is required",
	"email":       "Valid email is required",
	"company":     "Company name is required",
	"position":    "Position is required",
	"startDate":   "Start date is required",
	"institution": "Institution is required",
	"degree":      "Degree is required",
	"name":        "Project name is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return ve
}

// ValidatePersonal checks the personal info block.
func ValidatePersonal(p PersonalInfo) (PersonalInfo, error) {
	if err := check(p); err != nil {
		return PersonalInfo{}, err
	}
	return p, nil
}

func ValidateWork(w WorkExperience) (WorkExperience, error) {
	if err := check(w); err != nil {
		return WorkExperience{}, err
	}
	w.Highlights = UniqueTags(w.Highlights)
	return w, nil
}

func ValidateEducation(e Education) (Education, error) {
	if err := check(e); err != nil {
		return Education{}, err
	}
	return e, nil
}

func ValidateProject(p Project) (Project, error) {
	if err := check(p); err != nil {
		return Project{}, err
	}
	p.Technologies = UniqueTags(p.Technologies)
	return p, nil
}

// UniqueTags trims values, drops blanks and keeps the first occurrence of
// each remaining value. The result is never nil.
func UniqueTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// FieldMessage returns the message reported when the named json field fails
// validation, or "" for fields without a rule.
func FieldMessage(field string) string {
	return messages[field]
}

// CheckEmail validates a single email address the way ValidatePersonal does.
func CheckEmail(s string) error {
	if err := validate.Var(s, "required,email"); err != nil {
		return errors.New(messages["email"])
	}
	return nil
}
