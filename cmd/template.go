package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ecodeclub/ekit/slice"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Choose the visual template",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(markdown.RenderTemplateTable(model.Selectable(), st.Template()))
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the selected template",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(st.Template())
		return nil
	},
}

var templateSetCmd = &cobra.Command{
	Use:   "set [template]",
	Short: "Select a template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var choice string
		if len(args) == 1 {
			choice = args[0]
		} else {
			choice = string(st.Template())
			opts := slice.Map(model.Selectable(), func(_ int, t model.TemplateInfo) huh.Option[string] {
				return huh.NewOption(fmt.Sprintf("%s  %s", t.Name, t.Description), string(t.ID))
			})
			if err := huh.NewSelect[string]().
				Title("Select a template").
				Options(opts...).
				Value(&choice).
				Run(); err != nil {
				return fmt.Errorf("selection cancelled")
			}
		}

		id, err := model.ParseTemplate(choice)
		if err != nil {
			return err
		}
		if err := st.SetTemplate(id); err != nil {
			return err
		}
		fmt.Printf("Template set to %s\n", id)
		return nil
	},
}

// resolveTemplate returns the --template override or the stored selection.
func resolveTemplate(cmd *cobra.Command) (model.TemplateID, error) {
	if cmd.Flags().Changed("template") {
		v, _ := cmd.Flags().GetString("template")
		return model.ParseTemplate(v)
	}
	return st.Template(), nil
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateSetCmd)
	rootCmd.AddCommand(templateCmd)
}
