package section

import (
	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
)

type WorkEditor struct {
	*collection[model.WorkExperience]
}

var _ Editor[model.WorkExperience] = (*WorkEditor)(nil)

func NewWorkEditor(st *store.Store) *WorkEditor {
	e := &WorkEditor{&collection[model.WorkExperience]{
		st:   st,
		kind: id.Work,
		idOf: func(w model.WorkExperience) string { return w.ID },
		withID: func(w model.WorkExperience, v string) model.WorkExperience {
			w.ID = v
			return w
		},
		validate: model.ValidateWork,
		empty: func() model.WorkExperience {
			return model.WorkExperience{Highlights: []string{}}
		},
		items: func(r model.Resume) []model.WorkExperience { return r.WorkExperience },
		patch: func(l []model.WorkExperience) store.Patch { return store.Patch{WorkExperience: &l} },
	}}
	e.StartCreate()
	return e
}

// StartEdit copies entry so edits to the draft's highlights never reach the
// caller's slice.
func (e *WorkEditor) StartEdit(entry model.WorkExperience) {
	e.collection.StartEdit(entry.Clone())
}

// Highlights edits the draft's highlight list.
func (e *WorkEditor) Highlights() *TagList {
	return &TagList{values: &e.draft.Highlights}
}
