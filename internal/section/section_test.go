package section

import (
	"testing"

	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*store.Store, *store.MemoryBackend) {
	t.Helper()
	b := store.NewMemoryBackend()
	return store.New(b, nil), b
}

func work(company string) model.WorkExperience {
	return model.WorkExperience{
		Company:   company,
		Position:  "Engineer",
		StartDate: "2021-03",
	}
}

func TestWorkEditor_CreateAppends(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)

	require.NoError(t, e.Commit(work("Acme")))
	require.NoError(t, e.Commit(work("Globex")))

	list := st.Document().WorkExperience
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Company)
	assert.Equal(t, "Globex", list[1].Company)
	assert.NotEqual(t, list[0].ID, list[1].ID)

	typ, err := id.TypeOf(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, id.Work, typ)
	assert.Empty(t, e.Target())
}

func TestWorkEditor_EditReplacesInPlace(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("Acme")))
	require.NoError(t, e.Commit(work("Globex")))
	require.NoError(t, e.Commit(work("Initech")))

	target := st.Document().WorkExperience[1]
	e.StartEdit(target)
	assert.Equal(t, target.ID, e.Target())
	assert.Equal(t, "Globex", e.Draft().Company)

	edited := e.Draft()
	edited.Position = "Staff Engineer"
	require.NoError(t, e.Commit(edited))

	list := st.Document().WorkExperience
	require.Len(t, list, 3)
	assert.Equal(t, target.ID, list[1].ID)
	assert.Equal(t, "Staff Engineer", list[1].Position)
	assert.Equal(t, "Acme", list[0].Company)
	assert.Equal(t, "Initech", list[2].Company)
	assert.Empty(t, e.Target())
}

func TestWorkEditor_EditOfRemovedTargetAppends(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("Acme")))
	entry := st.Document().WorkExperience[0]

	e.StartEdit(entry)
	other := NewWorkEditor(st)
	other.Remove(entry.ID)

	require.NoError(t, e.Commit(e.Draft()))
	list := st.Document().WorkExperience
	require.Len(t, list, 1)
	assert.NotEqual(t, entry.ID, list[0].ID)
}

func TestWorkEditor_ValidationBlocksCommit(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("Acme")))
	before := st.Document()

	bad := work("")
	err := e.Commit(bad)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Company name is required", verr.Message("company"))

	assert.Equal(t, before, st.Document())
	assert.Equal(t, bad, e.Draft())
}

func TestWorkEditor_ValidationOnEditKeepsTarget(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("Acme")))
	entry := st.Document().WorkExperience[0]

	e.StartEdit(entry)
	bad := entry
	bad.Position = ""
	require.Error(t, e.Commit(bad))
	assert.Equal(t, entry.ID, e.Target())
	assert.Equal(t, "Engineer", st.Document().WorkExperience[0].Position)
}

func TestWorkEditor_RemoveKeepsOrder(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	for _, c := range []string{"A", "B", "C"} {
		require.NoError(t, e.Commit(work(c)))
	}
	list := st.Document().WorkExperience
	e.Remove(list[1].ID)

	got := st.Document().WorkExperience
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Company)
	assert.Equal(t, "C", got[1].Company)
}

func TestWorkEditor_RemoveAbsentIsNoop(t *testing.T) {
	st, b := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("A")))
	before := st.Document()
	stored, _, _ := b.Get(store.DataKey)

	e.Remove("WORK-doesnotexist")
	assert.Equal(t, before, st.Document())
	after, _, _ := b.Get(store.DataKey)
	assert.Equal(t, stored, after)
}

func TestWorkEditor_RemoveTargetResets(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("A")))
	entry := st.Document().WorkExperience[0]

	e.StartEdit(entry)
	e.Remove(entry.ID)
	assert.Empty(t, e.Target())
	assert.Empty(t, e.Draft().Company)
}

func TestWorkEditor_CancelDiscardsDraft(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	require.NoError(t, e.Commit(work("A")))
	before := st.Document()

	e.StartEdit(before.WorkExperience[0])
	e.Highlights().Add("Led migration")
	e.Cancel()

	assert.Empty(t, e.Target())
	assert.Equal(t, model.WorkExperience{Highlights: []string{}}, e.Draft())
	assert.Equal(t, before, st.Document())
}

func TestWorkEditor_HighlightsOnDraft(t *testing.T) {
	st, _ := newStore(t)
	e := NewWorkEditor(st)
	e.StartEdit(work("A"))

	h := e.Highlights()
	assert.True(t, h.Add(" Cut costs "))
	assert.False(t, h.Add("Cut costs"))
	assert.False(t, h.Add("   "))
	assert.True(t, h.Add("Hired team"))
	assert.Equal(t, []string{"Cut costs", "Hired team"}, e.Draft().Highlights)

	assert.True(t, h.Remove("Cut costs"))
	assert.False(t, h.Remove("Cut costs"))
	assert.Equal(t, []string{"Hired team"}, e.Draft().Highlights)
	assert.Empty(t, st.Document().WorkExperience)
}

func TestEducationEditor(t *testing.T) {
	st, _ := newStore(t)
	e := NewEducationEditor(st)

	err := e.Commit(model.Education{Institution: "MIT"})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Degree is required", verr.Message("degree"))
	assert.Empty(t, st.Document().Education)

	require.NoError(t, e.Commit(model.Education{Institution: "MIT", Degree: "BSc", Field: "CS"}))
	list := e.List()
	require.Len(t, list, 1)

	got, ok := e.Get(list[0].ID)
	require.True(t, ok)
	assert.Equal(t, "CS", got.Field)

	e.StartEdit(got)
	got.GPA = "3.9"
	require.NoError(t, e.Commit(got))
	require.Len(t, e.List(), 1)
	assert.Equal(t, "3.9", e.List()[0].GPA)
}

func TestProjectEditor_TechnologiesNormalized(t *testing.T) {
	st, _ := newStore(t)
	e := NewProjectEditor(st)

	require.NoError(t, e.Commit(model.Project{Name: "Tool", Technologies: []string{"Go", " Go", "", "SQL"}}))
	p := st.Document().Projects[0]
	assert.Equal(t, []string{"Go", "SQL"}, p.Technologies)

	e.StartEdit(p)
	tech := e.Technologies()
	assert.False(t, tech.Add("Go"))
	assert.True(t, tech.Add("Docker"))
	assert.Equal(t, []string{"Go", "SQL"}, st.Document().Projects[0].Technologies)

	require.NoError(t, e.Commit(e.Draft()))
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, st.Document().Projects[0].Technologies)
}

func TestProjectEditor_RequiresName(t *testing.T) {
	st, _ := newStore(t)
	e := NewProjectEditor(st)
	err := e.Commit(model.Project{URL: "https://example.com"})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Project name is required", verr.Message("name"))
}

func TestSkillsEditor(t *testing.T) {
	st, _ := newStore(t)
	e := NewSkillsEditor(st)

	assert.True(t, e.Add("Go"))
	assert.True(t, e.Add(" Rust "))
	assert.False(t, e.Add("Go"))
	assert.False(t, e.Add(""))
	assert.Equal(t, []string{"Go", "Rust"}, st.Document().Skills)

	assert.True(t, e.Add("go"))
	assert.Equal(t, []string{"Go", "Rust", "go"}, st.Document().Skills)

	assert.True(t, e.Remove("Go"))
	assert.False(t, e.Remove("Go"))
	assert.Equal(t, []string{"Rust", "go"}, st.Document().Skills)
}

func TestPersonalEditor(t *testing.T) {
	st, _ := newStore(t)
	e := NewPersonalEditor(st)
	assert.Equal(t, Personal{}, e.Draft())

	err := e.Commit(Personal{Info: model.PersonalInfo{FullName: "Jane", Email: "not-an-email"}, Summary: "Hi"})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Valid email is required", verr.Message("email"))
	assert.Equal(t, model.Default(), st.Document())

	p := Personal{Info: model.PersonalInfo{FullName: "Jane", Email: "jane@example.com"}, Summary: "Hi"}
	require.NoError(t, e.Commit(p))
	doc := st.Document()
	assert.Equal(t, p.Info, doc.PersonalInfo)
	assert.Equal(t, "Hi", doc.Summary)

	e.Cancel()
	assert.Equal(t, p, NewPersonalEditor(st).Draft())
}

func TestTagList_NilBacking(t *testing.T) {
	var values []string
	tl := NewTagList(&values)
	assert.True(t, tl.Add("a"))
	assert.Equal(t, []string{"a"}, values)
	assert.Equal(t, []string{"a"}, tl.Values())
}
