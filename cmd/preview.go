package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/render"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the formatted resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := resolveTemplate(cmd)
		if err != nil {
			return err
		}
		doc := st.Document()
		warnIfEmpty(cmd, doc)
		page, err := render.Render(doc, tmpl)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "terminal":
			s, err := markdown.RenderMarkdown(page.Markdown())
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
		case "markdown":
			fmt.Fprint(out, page.Markdown())
		case "html":
			s, err := page.HTML()
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
		default:
			return fmt.Errorf("unknown format %q (must be terminal, markdown or html)", format)
		}
		return nil
	},
}

// warnIfEmpty tells the user the output holds placeholders only.
func warnIfEmpty(cmd *cobra.Command, doc model.Resume) {
	if doc.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Nothing entered yet; the resume shows placeholders only. Start with `resumecraft personal set`.")
	}
}

func init() {
	previewCmd.Flags().String("format", "terminal", "output format (terminal, markdown, html)")
	previewCmd.Flags().StringP("template", "t", "", "template to use instead of the selected one")
	rootCmd.AddCommand(previewCmd)
}
