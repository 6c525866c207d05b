package section

import (
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
)

// Personal is the draft edited by PersonalEditor. The summary lives on the
// same form as the contact details and is committed with them.
type Personal struct {
	Info    model.PersonalInfo
	Summary string
}

type PersonalEditor struct {
	st    *store.Store
	draft Personal
}

func NewPersonalEditor(st *store.Store) *PersonalEditor {
	e := &PersonalEditor{st: st}
	e.Cancel()
	return e
}

func (e *PersonalEditor) Draft() Personal {
	return e.draft
}

// Cancel discards the draft and reloads the stored values.
func (e *PersonalEditor) Cancel() {
	doc := e.st.Document()
	e.draft = Personal{Info: doc.PersonalInfo, Summary: doc.Summary}
}

// Commit validates the contact details and stores them together with the
// summary. A failed commit keeps the draft and leaves the document as is.
func (e *PersonalEditor) Commit(p Personal) error {
	e.draft = p
	info, err := model.ValidatePersonal(p.Info)
	if err != nil {
		return err
	}
	summary := p.Summary
	e.st.Update(store.Patch{PersonalInfo: &info, Summary: &summary})
	return nil
}
