package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/section"
	"github.com/spf13/cobra"
)

var educationCmd = &cobra.Command{
	Use:     "education",
	Aliases: []string{"edu"},
	Short:   "Manage education",
}

var educationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List education in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(markdown.RenderEducationTable(section.NewEducationEditor(st).List()))
		return nil
	},
}

var educationShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an education entry",
	Args:  entryID(id.Education),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, ok := section.NewEducationEditor(st).Get(args[0])
		if !ok {
			return fmt.Errorf("education %s not found", args[0])
		}
		fmt.Print(markdown.RenderEducation(e))
		return nil
	},
}

var educationDescription = describable[model.Education]{
	get: func(e model.Education) string { return e.Description },
	set: func(e *model.Education, s string) { e.Description = s },
}

func applyEducationFlags(cmd *cobra.Command, e *model.Education) {
	stringFlag(cmd, "institution", &e.Institution)
	stringFlag(cmd, "degree", &e.Degree)
	stringFlag(cmd, "field", &e.Field)
	stringFlag(cmd, "location", &e.Location)
	stringFlag(cmd, "start", &e.StartDate)
	stringFlag(cmd, "end", &e.EndDate)
	stringFlag(cmd, "gpa", &e.GPA)
	stringFlag(cmd, "description", &e.Description)
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewEducationEditor(st)
		draft := ed.Draft()
		applyEducationFlags(cmd, &draft)
		if err := fillDraft(cmd, &draft, educationForm, educationDescription); err != nil {
			return err
		}
		e, err := saveDraft[model.Education](ed, draft)
		if err != nil {
			return err
		}
		fmt.Println(e.ID)
		return nil
	},
}

var educationEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an education entry in place",
	Args:  entryID(id.Education),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewEducationEditor(st)
		e, ok := ed.Get(args[0])
		if !ok {
			return fmt.Errorf("education %s not found", args[0])
		}
		ed.StartEdit(e)
		draft := ed.Draft()
		applyEducationFlags(cmd, &draft)
		if err := fillDraft(cmd, &draft, educationForm, educationDescription); err != nil {
			return err
		}
		if _, err := saveDraft[model.Education](ed, draft); err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", e.ID)
		return nil
	},
}

var educationRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an education entry",
	Args:    entryID(id.Education),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewEducationEditor(st)
		e, ok := ed.Get(args[0])
		if !ok {
			fmt.Printf("No education %s\n", args[0])
			return nil
		}
		fmt.Printf("Education: %s, %s (%s)\n", e.Degree, e.Institution, e.ID)
		if err := confirm(cmd, "Remove this entry?"); err != nil {
			return err
		}
		ed.Remove(e.ID)
		fmt.Printf("Removed %s\n", e.ID)
		return nil
	},
}

func addEducationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("institution", "", "school or university")
	f.String("degree", "", "degree")
	f.String("field", "", "field of study")
	f.String("location", "", "location")
	f.String("start", "", "start date")
	f.String("end", "", "end date")
	f.String("gpa", "", "GPA")
	f.String("description", "", "description")
	addDraftFlags(cmd)
}

func init() {
	addEducationFlags(educationAddCmd)
	addEducationFlags(educationEditCmd)
	educationRemoveCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	educationCmd.AddCommand(educationListCmd)
	educationCmd.AddCommand(educationShowCmd)
	educationCmd.AddCommand(educationAddCmd)
	educationCmd.AddCommand(educationEditCmd)
	educationCmd.AddCommand(educationRemoveCmd)
	rootCmd.AddCommand(educationCmd)
}
