package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/section"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Manage personal info and the professional summary",
}

var personalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show personal info",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := st.Document()
		fmt.Print(markdown.RenderPersonal(doc.PersonalInfo, doc.Summary))
		return nil
	},
}

var personalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update personal info and summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := section.NewPersonalEditor(st)
		p := ed.Draft()
		stringFlag(cmd, "full-name", &p.Info.FullName)
		stringFlag(cmd, "email", &p.Info.Email)
		stringFlag(cmd, "phone", &p.Info.Phone)
		stringFlag(cmd, "location", &p.Info.Location)
		stringFlag(cmd, "website", &p.Info.Website)
		stringFlag(cmd, "linkedin", &p.Info.LinkedIn)
		stringFlag(cmd, "github", &p.Info.GitHub)
		stringFlag(cmd, "summary", &p.Summary)

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := personalForm(&p); err != nil {
				return fmt.Errorf("form cancelled: %w", err)
			}
		}
		if err := ed.Commit(p); err != nil {
			return reportInvalid(err)
		}
		fmt.Println("Saved personal info")
		return nil
	},
}

func init() {
	f := personalSetCmd.Flags()
	f.String("full-name", "", "full name")
	f.String("email", "", "email address")
	f.String("phone", "", "phone number")
	f.String("location", "", "city, country")
	f.String("website", "", "personal website")
	f.String("linkedin", "", "LinkedIn profile")
	f.String("github", "", "GitHub profile")
	f.String("summary", "", "professional summary")
	f.BoolP("interactive", "i", false, "edit with an interactive form")

	personalCmd.AddCommand(personalShowCmd)
	personalCmd.AddCommand(personalSetCmd)
	rootCmd.AddCommand(personalCmd)
}
