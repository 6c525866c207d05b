package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/section"
	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:     "experience",
	Aliases: []string{"exp", "work"},
	Short:   "Manage work experience",
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work experience in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(markdown.RenderWorkTable(section.NewWorkEditor(st).List()))
		return nil
	},
}

var experienceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a work experience entry",
	Args:  entryID(id.Work),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, ok := section.NewWorkEditor(st).Get(args[0])
		if !ok {
			return fmt.Errorf("work experience %s not found", args[0])
		}
		fmt.Print(markdown.RenderWork(w))
		return nil
	},
}

var workDescription = describable[model.WorkExperience]{
	get: func(w model.WorkExperience) string { return w.Description },
	set: func(w *model.WorkExperience, s string) { w.Description = s },
}

func applyWorkFlags(cmd *cobra.Command, w *model.WorkExperience) {
	stringFlag(cmd, "company", &w.Company)
	stringFlag(cmd, "position", &w.Position)
	stringFlag(cmd, "location", &w.Location)
	stringFlag(cmd, "start", &w.StartDate)
	stringFlag(cmd, "end", &w.EndDate)
	stringFlag(cmd, "description", &w.Description)
	if cmd.Flags().Changed("current") {
		w.Current, _ = cmd.Flags().GetBool("current")
	}

	tags := section.NewTagList(&w.Highlights)
	if cmd.Flags().Changed("highlight") {
		w.Highlights = []string{}
		vals, _ := cmd.Flags().GetStringArray("highlight")
		for _, v := range vals {
			tags.Add(v)
		}
	}
	if cmd.Flags().Lookup("add-highlight") != nil {
		add, _ := cmd.Flags().GetStringArray("add-highlight")
		for _, v := range add {
			tags.Add(v)
		}
		remove, _ := cmd.Flags().GetStringArray("remove-highlight")
		for _, v := range remove {
			tags.Remove(v)
		}
	}
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a work experience entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewWorkEditor(st)
		ed.StartCreate()
		draft := ed.Draft()
		applyWorkFlags(cmd, &draft)
		if err := fillDraft(cmd, &draft, workForm, workDescription); err != nil {
			return err
		}
		w, err := saveDraft[model.WorkExperience](ed, draft)
		if err != nil {
			return err
		}
		fmt.Println(w.ID)
		return nil
	},
}

var experienceEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a work experience entry in place",
	Args:  entryID(id.Work),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewWorkEditor(st)
		w, ok := ed.Get(args[0])
		if !ok {
			return fmt.Errorf("work experience %s not found", args[0])
		}
		ed.StartEdit(w)
		draft := ed.Draft()
		applyWorkFlags(cmd, &draft)
		if err := fillDraft(cmd, &draft, workForm, workDescription); err != nil {
			return err
		}
		if _, err := saveDraft[model.WorkExperience](ed, draft); err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", w.ID)
		return nil
	},
}

var experienceRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a work experience entry",
	Args:    entryID(id.Work),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewWorkEditor(st)
		w, ok := ed.Get(args[0])
		if !ok {
			fmt.Printf("No work experience %s\n", args[0])
			return nil
		}
		fmt.Printf("Work experience: %s at %s (%s)\n", w.Position, w.Company, w.ID)
		if err := confirm(cmd, "Remove this entry?"); err != nil {
			return err
		}
		ed.Remove(w.ID)
		fmt.Printf("Removed %s\n", w.ID)
		return nil
	},
}

func addWorkFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("company", "", "company name")
	f.String("position", "", "job title")
	f.String("location", "", "location")
	f.String("start", "", "start date")
	f.String("end", "", "end date")
	f.Bool("current", false, "currently in this position (shows Present)")
	f.String("description", "", "description")
	f.StringArray("highlight", nil, "highlight (repeatable; replaces existing on edit)")
	addDraftFlags(cmd)
}

func init() {
	addWorkFlags(experienceAddCmd)
	addWorkFlags(experienceEditCmd)
	experienceEditCmd.Flags().StringArray("add-highlight", nil, "append a highlight (repeatable)")
	experienceEditCmd.Flags().StringArray("remove-highlight", nil, "remove a highlight (repeatable)")
	experienceRemoveCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	experienceCmd.AddCommand(experienceListCmd)
	experienceCmd.AddCommand(experienceShowCmd)
	experienceCmd.AddCommand(experienceAddCmd)
	experienceCmd.AddCommand(experienceEditCmd)
	experienceCmd.AddCommand(experienceRemoveCmd)
	rootCmd.AddCommand(experienceCmd)
}
