package cmd

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/section"
)

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(model.FieldMessage(field))
		}
		return nil
	}
}

func input(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value)
}

// lines splits a multi-line text field into trimmed, unique entries.
func lines(text string) []string {
	return model.UniqueTags(strings.Split(text, "\n"))
}

func personalForm(p *section.Personal) error {
	return huh.NewForm(
		huh.NewGroup(
			input("Full name", &p.Info.FullName).Validate(required("fullName")),
			input("Email", &p.Info.Email).Validate(model.CheckEmail),
			input("Phone", &p.Info.Phone),
			input("Location", &p.Info.Location),
		),
		huh.NewGroup(
			input("Website", &p.Info.Website),
			input("LinkedIn", &p.Info.LinkedIn),
			input("GitHub", &p.Info.GitHub),
			huh.NewText().Title("Professional summary").Value(&p.Summary),
		),
	).Run()
}

func workForm(w *model.WorkExperience) error {
	highlights := strings.Join(w.Highlights, "\n")
	err := huh.NewForm(
		huh.NewGroup(
			input("Company", &w.Company).Validate(required("company")),
			input("Position", &w.Position).Validate(required("position")),
			input("Location", &w.Location),
			input("Start date", &w.StartDate).Validate(required("startDate")),
			huh.NewConfirm().Title("Current position?").Value(&w.Current),
		),
		huh.NewGroup(
			input("End date", &w.EndDate),
			huh.NewText().Title("Description").Value(&w.Description),
			huh.NewText().Title("Highlights").Description("One per line").Value(&highlights),
		),
	).Run()
	if err != nil {
		return err
	}
	w.Highlights = lines(highlights)
	return nil
}

func educationForm(e *model.Education) error {
	return huh.NewForm(
		huh.NewGroup(
			input("Institution", &e.Institution).Validate(required("institution")),
			input("Degree", &e.Degree).Validate(required("degree")),
			input("Field of study", &e.Field),
			input("Location", &e.Location),
		),
		huh.NewGroup(
			input("Start date", &e.StartDate),
			input("End date", &e.EndDate),
			input("GPA", &e.GPA),
			huh.NewText().Title("Description").Value(&e.Description),
		),
	).Run()
}

func projectForm(p *model.Project) error {
	tech := strings.Join(p.Technologies, "\n")
	err := huh.NewForm(
		huh.NewGroup(
			input("Name", &p.Name).Validate(required("name")),
			input("URL", &p.URL),
			input("Start date", &p.StartDate),
			input("End date", &p.EndDate),
		),
		huh.NewGroup(
			huh.NewText().Title("Description").Value(&p.Description),
			huh.NewText().Title("Technologies").Description("One per line").Value(&tech),
		),
	).Run()
	if err != nil {
		return err
	}
	p.Technologies = lines(tech)
	return nil
}
