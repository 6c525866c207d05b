package section

import (
	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
)

type EducationEditor struct {
	*collection[model.Education]
}

var _ Editor[model.Education] = (*EducationEditor)(nil)

func NewEducationEditor(st *store.Store) *EducationEditor {
	e := &EducationEditor{&collection[model.Education]{
		st:   st,
		kind: id.Education,
		idOf: func(ed model.Education) string { return ed.ID },
		withID: func(ed model.Education, v string) model.Education {
			ed.ID = v
			return ed
		},
		validate: model.ValidateEducation,
		empty:    func() model.Education { return model.Education{} },
		items:    func(r model.Resume) []model.Education { return r.Education },
		patch:    func(l []model.Education) store.Patch { return store.Patch{Education: &l} },
	}}
	e.StartCreate()
	return e
}
