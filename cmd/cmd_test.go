package cmd

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogersnm/resumecraft/internal/export"
	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("RESUMECRAFT_CHROME_PATH", "")
	t.Setenv("RESUMECRAFT_LOG_LEVEL", "")
	return t.TempDir()
}

// resetFlags restores every flag to its default so values from one test do
// not leak into the next through cobra's shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	_, err := runOut(t, dir, args...)
	return err
}

func runOut(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	if dir != "" {
		args = append([]string{"--data-dir", dir}, args...)
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func storedTemplate(dir string) model.TemplateID {
	return store.New(store.NewFileBackend(filepath.Join(dir, "storage")), nil).Template()
}

// stored reads the document back from disk through a fresh store.
func stored(dir string) model.Resume {
	return store.New(store.NewFileBackend(filepath.Join(dir, "storage")), nil).Document()
}

func TestPersonalSet(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "personal", "set",
		"--full-name", "Jane Doe", "--email", "jane@example.com", "--summary", "Builds things."))

	doc := stored(dir)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "jane@example.com", doc.PersonalInfo.Email)
	assert.Equal(t, "Builds things.", doc.Summary)

	require.NoError(t, run(t, dir, "personal", "set", "--phone", "555-0100"))
	doc = stored(dir)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "555-0100", doc.PersonalInfo.Phone)
}

func TestPersonalSet_InvalidEmail(t *testing.T) {
	dir := setupEnv(t)
	err := run(t, dir, "personal", "set", "--full-name", "Jane", "--email", "nope")
	require.Error(t, err)
	assert.Equal(t, model.Default(), stored(dir))
}

func TestExperience_AddEditRemove(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "experience", "add",
		"--company", "Acme", "--position", "Engineer", "--start", "2020-01",
		"--highlight", "Shipped v1", "--highlight", "Shipped v1", "--highlight", "Hired, trained team"))
	require.NoError(t, run(t, dir, "experience", "add",
		"--company", "Globex", "--position", "Lead", "--start", "2022-01", "--current"))

	list := stored(dir).WorkExperience
	require.Len(t, list, 2)
	assert.Equal(t, []string{"Shipped v1", "Hired, trained team"}, list[0].Highlights)
	assert.True(t, list[1].Current)

	require.NoError(t, run(t, dir, "experience", "edit", list[0].ID,
		"--position", "Senior Engineer", "--add-highlight", "Cut costs", "--remove-highlight", "Shipped v1"))
	got := stored(dir).WorkExperience
	require.Len(t, got, 2)
	assert.Equal(t, list[0].ID, got[0].ID)
	assert.Equal(t, "Senior Engineer", got[0].Position)
	assert.Equal(t, "Acme", got[0].Company)
	assert.Equal(t, []string{"Hired, trained team", "Cut costs"}, got[0].Highlights)

	require.NoError(t, run(t, dir, "experience", "remove", list[0].ID, "--force"))
	got = stored(dir).WorkExperience
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].Company)
}

func TestExperience_AddRequiresCompany(t *testing.T) {
	dir := setupEnv(t)
	err := run(t, dir, "experience", "add", "--position", "Engineer", "--start", "2020")
	require.Error(t, err)
	assert.Empty(t, stored(dir).WorkExperience)
}

func TestExperience_RemoveUnknownIsNoop(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "experience", "add", "--company", "A", "--position", "B", "--start", "2020"))
	require.NoError(t, run(t, dir, "experience", "remove", id.New(id.Work), "--force"))
	assert.Len(t, stored(dir).WorkExperience, 1)
}

func TestExperience_EditUnknown(t *testing.T) {
	dir := setupEnv(t)
	err := run(t, dir, "experience", "edit", id.New(id.Work), "--company", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEntryCommands_RejectWrongKindOfID(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "project", "add", "--name", "Tool"))
	projID := stored(dir).Projects[0].ID

	err := run(t, dir, "experience", "remove", projID, "--force")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a work experience id")
	assert.Len(t, stored(dir).Projects, 1)

	assert.Error(t, run(t, dir, "education", "show", projID))
	assert.Error(t, run(t, dir, "project", "edit", "PROJ-1", "--name", "X"))
	require.NoError(t, run(t, dir, "project", "show", projID))
}

func TestEducation_AddEdit(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "education", "add", "--institution", "MIT", "--degree", "BSc"))
	e := stored(dir).Education[0]

	require.NoError(t, run(t, dir, "education", "edit", e.ID, "--gpa", "3.9"))
	got := stored(dir).Education
	require.Len(t, got, 1)
	assert.Equal(t, "3.9", got[0].GPA)
	assert.Equal(t, "MIT", got[0].Institution)

	assert.Error(t, run(t, dir, "education", "add", "--institution", "Nowhere"))
	assert.Len(t, stored(dir).Education, 1)
}

func TestProject_Technologies(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "project", "add", "--name", "Tool", "--tech", "Go", "--tech", "Go", "--tech", "SQL"))
	p := stored(dir).Projects[0]
	assert.Equal(t, []string{"Go", "SQL"}, p.Technologies)

	require.NoError(t, run(t, dir, "project", "edit", p.ID, "--add-tech", "Go", "--add-tech", "Docker", "--remove-tech", "SQL"))
	assert.Equal(t, []string{"Go", "Docker"}, stored(dir).Projects[0].Technologies)

	require.NoError(t, run(t, dir, "project", "edit", p.ID, "--tech", "Rust"))
	assert.Equal(t, []string{"Rust"}, stored(dir).Projects[0].Technologies)
}

func TestSkill_AddRemove(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "skill", "add", "Go", "SQL", "Go", " "))
	assert.Equal(t, []string{"Go", "SQL"}, stored(dir).Skills)

	require.NoError(t, run(t, dir, "skill", "remove", "Go", "Missing"))
	assert.Equal(t, []string{"SQL"}, stored(dir).Skills)
}

func TestTemplate_Set(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "template", "show"))
	assert.Equal(t, model.TemplateModern, storedTemplate(dir))

	require.NoError(t, run(t, dir, "template", "set", "classic"))
	assert.Equal(t, model.TemplateClassic, storedTemplate(dir))

	assert.ErrorIs(t, run(t, dir, "template", "set", "minimal"), model.ErrUnknownTemplate)
	assert.ErrorIs(t, run(t, dir, "template", "set", "fancy"), model.ErrUnknownTemplate)
	assert.Equal(t, model.TemplateClassic, storedTemplate(dir))
}

func TestPreview_HTML(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "experience", "add", "--company", "Acme", "--position", "Engineer", "--start", "2020", "--end", "2021", "--current"))

	out, err := runOut(t, dir, "preview", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, `id="resume-preview"`)
	assert.Contains(t, out, "2020 - Present")
	assert.Contains(t, out, "Your Name")
	assert.Contains(t, out, "WORK EXPERIENCE")

	out, err = runOut(t, dir, "preview", "--format", "markdown", "--template", "classic")
	require.NoError(t, err)
	assert.Contains(t, out, "## EXPERIENCE")
	assert.NotContains(t, out, "PROJECTS")

	assert.Error(t, run(t, dir, "preview", "--format", "pdf"))
	assert.Error(t, run(t, dir, "preview", "--template", "professional"))
}

func TestPreview_EmptyResumeHint(t *testing.T) {
	dir := setupEnv(t)
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	defer rootCmd.SetErr(nil)

	require.NoError(t, run(t, dir, "preview", "--format", "markdown"))
	assert.Contains(t, errOut.String(), "Nothing entered yet")

	errOut.Reset()
	require.NoError(t, run(t, dir, "skill", "add", "Go"))
	require.NoError(t, run(t, dir, "preview", "--format", "markdown"))
	assert.NotContains(t, errOut.String(), "Nothing entered yet")
}

type fakeRasterizer struct {
	err error
}

func (f fakeRasterizer) Rasterize(ctx context.Context, html string, scale float64) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	return image.NewRGBA(image.Rect(0, 0, int(100*scale), int(140*scale))), nil
}

func withRasterizer(t *testing.T, r export.Rasterizer) {
	prev := newRasterizer
	newRasterizer = func() export.Rasterizer { return r }
	t.Cleanup(func() { newRasterizer = prev })
}

func TestExport_WritesPDF(t *testing.T) {
	dir := setupEnv(t)
	withRasterizer(t, fakeRasterizer{})
	outDir := filepath.Join(dir, "out")

	require.NoError(t, run(t, dir, "personal", "set", "--full-name", "Jane Q. Public", "--email", "jane@example.com"))
	require.NoError(t, run(t, dir, "export", "--output-dir", outDir))

	data, err := os.ReadFile(filepath.Join(outDir, "Jane_Q._Public_Resume.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExport_FailureLeavesNothing(t *testing.T) {
	dir := setupEnv(t)
	withRasterizer(t, fakeRasterizer{err: errors.New("no chrome")})
	outDir := filepath.Join(dir, "out")

	err := run(t, dir, "export", "--output-dir", outDir)
	assert.ErrorIs(t, err, errExportFailed)
	entries, _ := os.ReadDir(outDir)
	assert.Empty(t, entries)
}

func TestImportDump(t *testing.T) {
	dir := setupEnv(t)
	src := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(src, []byte(`{
  "personalInfo": {"fullName": "Jane", "email": "jane@example.com"},
  "skills": ["Go", "Go"],
  "projects": [{"id": "PROJ-1", "name": "Tool", "technologies": ["Go"]}]
}`), 0644))

	require.NoError(t, run(t, dir, "import", src))
	doc := stored(dir)
	assert.Equal(t, "Jane", doc.PersonalInfo.FullName)
	assert.Equal(t, []string{"Go"}, doc.Skills)
	require.Len(t, doc.Projects, 1)
	assert.NoError(t, id.Expect(doc.Projects[0].ID, id.Project))

	out, err := runOut(t, dir, "dump")
	require.NoError(t, err)
	dumped, err := store.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, doc, dumped)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"skills": "Go"}`), 0644))
	assert.Error(t, run(t, dir, "import", bad))
	assert.Equal(t, doc, stored(dir))
}

func TestImport_RejectsInvalidEntries(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "skill", "add", "Kept"))

	src := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(src, []byte(`{
  "personalInfo": {"fullName": "Jane", "email": "nope"},
  "workExperience": [{"company": "", "position": "Engineer", "startDate": "2020"}]
}`), 0644))

	err := run(t, dir, "import", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 invalid field(s)")
	assert.Equal(t, []string{"Kept"}, stored(dir).Skills)
	assert.Empty(t, stored(dir).WorkExperience)
}

func TestImport_RepeatedIDsEditIndependently(t *testing.T) {
	dir := setupEnv(t)
	src := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(src, []byte(`{
  "workExperience": [
    {"id": "X", "company": "A", "position": "Engineer", "startDate": "2020"},
    {"id": "X", "company": "B", "position": "Engineer", "startDate": "2021"}
  ]
}`), 0644))
	require.NoError(t, run(t, dir, "import", src))

	list := stored(dir).WorkExperience
	require.Len(t, list, 2)
	require.NotEqual(t, list[0].ID, list[1].ID)

	require.NoError(t, run(t, dir, "experience", "edit", list[0].ID, "--company", "Edited"))
	got := stored(dir).WorkExperience
	require.Len(t, got, 2)
	assert.Equal(t, "Edited", got[0].Company)
	assert.Equal(t, "B", got[1].Company)

	require.NoError(t, run(t, dir, "experience", "remove", list[1].ID, "--force"))
	got = stored(dir).WorkExperience
	require.Len(t, got, 1)
	assert.Equal(t, "Edited", got[0].Company)
}

func TestClear(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, dir, "skill", "add", "Go"))
	require.NoError(t, run(t, dir, "template", "set", "classic"))

	require.NoError(t, run(t, dir, "clear", "--force"))
	assert.Equal(t, model.Default(), stored(dir))
	assert.Equal(t, model.TemplateClassic, storedTemplate(dir))
}

func TestLink_SelectsDataDir(t *testing.T) {
	dir := setupEnv(t)
	work := filepath.Join(dir, "work")
	require.NoError(t, os.MkdirAll(work, 0755))
	t.Chdir(work)

	require.NoError(t, run(t, dir, "link", "resume-data"))
	require.NoError(t, run(t, "", "skill", "add", "Go"))
	assert.Equal(t, []string{"Go"}, stored(filepath.Join(work, "resume-data")).Skills)
	assert.Empty(t, stored(dir).Skills)

	out, err := runOut(t, "", "where")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(work, "resume-data"))

	require.NoError(t, run(t, dir, "unlink"))
	_, err = os.Stat(filepath.Join(work, ".resumecraft"))
	assert.True(t, os.IsNotExist(err))
}
