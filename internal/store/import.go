package store

import (
	"errors"
	"fmt"

	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
)

// importCheck collects field errors across a whole imported document so they
// can be reported together. Field names carry their path, as in
// workExperience[1].company.
type importCheck struct {
	fields []model.FieldError
}

func (c *importCheck) add(path string, err error) error {
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for _, f := range verr.Fields {
		c.fields = append(c.fields, model.FieldError{Field: path + "." + f.Field, Message: f.Message})
	}
	return nil
}

func (c *importCheck) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &model.ValidationError{Fields: c.fields}
}

// checkEntries validates each entry with the same rules the section editors
// apply on commit. Entries whose id is blank, belongs to another section or
// is already taken get a fresh one.
func checkEntries[T any](c *importCheck, section string, kind id.EntityType, list []T,
	validate func(T) (T, error), idOf func(*T) *string) error {
	taken := make(map[string]bool, len(list))
	for i := range list {
		v, err := validate(list[i])
		if err != nil {
			if err := c.add(fmt.Sprintf("%s[%d]", section, i), err); err != nil {
				return err
			}
			continue
		}
		ref := idOf(&v)
		if id.Expect(*ref, kind) != nil || taken[*ref] {
			*ref = id.New(kind)
		}
		taken[*ref] = true
		list[i] = v
	}
	return nil
}

// checkImport normalizes doc in place or returns a *model.ValidationError
// listing every invalid field. An untouched personal block is accepted since
// it is what a fresh document holds.
func checkImport(doc *model.Resume) error {
	c := &importCheck{}

	if doc.PersonalInfo != (model.PersonalInfo{}) {
		p, err := model.ValidatePersonal(doc.PersonalInfo)
		if err != nil {
			if err := c.add("personalInfo", err); err != nil {
				return err
			}
		} else {
			doc.PersonalInfo = p
		}
	}
	if err := checkEntries(c, "workExperience", id.Work, doc.WorkExperience, model.ValidateWork,
		func(w *model.WorkExperience) *string { return &w.ID }); err != nil {
		return err
	}
	if err := checkEntries(c, "education", id.Education, doc.Education, model.ValidateEducation,
		func(e *model.Education) *string { return &e.ID }); err != nil {
		return err
	}
	if err := checkEntries(c, "projects", id.Project, doc.Projects, model.ValidateProject,
		func(p *model.Project) *string { return &p.ID }); err != nil {
		return err
	}
	doc.Skills = model.UniqueTags(doc.Skills)
	return c.err()
}
