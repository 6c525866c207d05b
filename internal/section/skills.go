package section

import (
	"github.com/rogersnm/resumecraft/internal/store"
)

// SkillsEditor edits the skills list directly; there is no draft.
type SkillsEditor struct {
	st *store.Store
}

func NewSkillsEditor(st *store.Store) *SkillsEditor {
	return &SkillsEditor{st: st}
}

func (e *SkillsEditor) List() []string {
	return e.st.Document().Skills
}

// Add appends a skill. Blank and duplicate values do not touch the store.
func (e *SkillsEditor) Add(v string) bool {
	out, ok := addTag(e.List(), v)
	if ok {
		e.st.Update(store.Patch{Skills: &out})
	}
	return ok
}

func (e *SkillsEditor) Remove(v string) bool {
	out, ok := removeTag(e.List(), v)
	if ok {
		e.st.Update(store.Patch{Skills: &out})
	}
	return ok
}
