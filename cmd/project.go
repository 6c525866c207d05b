package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/section"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"proj"},
	Short:   "Manage projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(markdown.RenderProjectTable(section.NewProjectEditor(st).List()))
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project",
	Args:  entryID(id.Project),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := section.NewProjectEditor(st).Get(args[0])
		if !ok {
			return fmt.Errorf("project %s not found", args[0])
		}
		fmt.Print(markdown.RenderProject(p))
		return nil
	},
}

var projectDescription = describable[model.Project]{
	get: func(p model.Project) string { return p.Description },
	set: func(p *model.Project, s string) { p.Description = s },
}

func applyProjectFlags(cmd *cobra.Command, p *model.Project) {
	stringFlag(cmd, "name", &p.Name)
	stringFlag(cmd, "url", &p.URL)
	stringFlag(cmd, "start", &p.StartDate)
	stringFlag(cmd, "end", &p.EndDate)
	stringFlag(cmd, "description", &p.Description)

	tags := section.NewTagList(&p.Technologies)
	if cmd.Flags().Changed("tech") {
		p.Technologies = []string{}
		vals, _ := cmd.Flags().GetStringArray("tech")
		for _, v := range vals {
			tags.Add(v)
		}
	}
	if cmd.Flags().Lookup("add-tech") != nil {
		add, _ := cmd.Flags().GetStringArray("add-tech")
		for _, v := range add {
			tags.Add(v)
		}
		remove, _ := cmd.Flags().GetStringArray("remove-tech")
		for _, v := range remove {
			tags.Remove(v)
		}
	}
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewProjectEditor(st)
		draft := ed.Draft()
		applyProjectFlags(cmd, &draft)
		if err := fillDraft(cmd, &draft, projectForm, projectDescription); err != nil {
			return err
		}
		p, err := saveDraft[model.Project](ed, draft)
		if err != nil {
			return err
		}
		fmt.Println(p.ID)
		return nil
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project in place",
	Args:  entryID(id.Project),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewProjectEditor(st)
		p, ok := ed.Get(args[0])
		if !ok {
			return fmt.Errorf("project %s not found", args[0])
		}
		ed.StartEdit(p)
		draft := ed.Draft()
		applyProjectFlags(cmd, &draft)
		if err := fillDraft(cmd, &draft, projectForm, projectDescription); err != nil {
			return err
		}
		if _, err := saveDraft[model.Project](ed, draft); err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", p.ID)
		return nil
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a project",
	Args:    entryID(id.Project),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewProjectEditor(st)
		p, ok := ed.Get(args[0])
		if !ok {
			fmt.Printf("No project %s\n", args[0])
			return nil
		}
		fmt.Printf("Project: %s (%s)\n", p.Name, p.ID)
		if err := confirm(cmd, "Remove this project?"); err != nil {
			return err
		}
		ed.Remove(p.ID)
		fmt.Printf("Removed %s\n", p.ID)
		return nil
	},
}

func addProjectFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "project name")
	f.String("url", "", "project URL")
	f.String("start", "", "start date")
	f.String("end", "", "end date")
	f.String("description", "", "description")
	f.StringArray("tech", nil, "technology (repeatable; replaces existing on edit)")
	addDraftFlags(cmd)
}

func init() {
	addProjectFlags(projectAddCmd)
	addProjectFlags(projectEditCmd)
	projectEditCmd.Flags().StringArray("add-tech", nil, "append a technology (repeatable)")
	projectEditCmd.Flags().StringArray("remove-tech", nil, "remove a technology (repeatable)")
	projectRemoveCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectRemoveCmd)
	rootCmd.AddCommand(projectCmd)
}
