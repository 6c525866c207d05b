package section

import (
	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
)

type ProjectEditor struct {
	*collection[model.Project]
}

var _ Editor[model.Project] = (*ProjectEditor)(nil)

func NewProjectEditor(st *store.Store) *ProjectEditor {
	e := &ProjectEditor{&collection[model.Project]{
		st:   st,
		kind: id.Project,
		idOf: func(p model.Project) string { return p.ID },
		withID: func(p model.Project, v string) model.Project {
			p.ID = v
			return p
		},
		validate: model.ValidateProject,
		empty: func() model.Project {
			return model.Project{Technologies: []string{}}
		},
		items: func(r model.Resume) []model.Project { return r.Projects },
		patch: func(l []model.Project) store.Patch { return store.Patch{Projects: &l} },
	}}
	e.StartCreate()
	return e
}

func (e *ProjectEditor) StartEdit(entry model.Project) {
	e.collection.StartEdit(entry.Clone())
}

// Technologies edits the draft's technology list.
func (e *ProjectEditor) Technologies() *TagList {
	return &TagList{values: &e.draft.Technologies}
}
