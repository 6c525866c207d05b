package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/section"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skills",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(markdown.RenderSkillTable(section.NewSkillsEditor(st).List()))
		return nil
	},
}

var skillAddCmd = &cobra.Command{
	Use:   "add <skill>...",
	Short: "Add skills; duplicates are ignored",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewSkillsEditor(st)
		for _, s := range args {
			if ed.Add(s) {
				fmt.Printf("Added %s\n", s)
			}
		}
		return nil
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:     "remove <skill>...",
	Aliases: []string{"rm"},
	Short:   "Remove skills",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewSkillsEditor(st)
		for _, s := range args {
			if ed.Remove(s) {
				fmt.Printf("Removed %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillRemoveCmd)
	rootCmd.AddCommand(skillCmd)
}
