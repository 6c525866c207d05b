package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/rogersnm/resumecraft/internal/export"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRasterizer is replaced in tests so no browser is needed.
var newRasterizer = func() export.Rasterizer {
	return &export.ChromeRasterizer{ExecPath: cfg.Export.ChromePath}
}

var errExportFailed = errors.New("export failed")

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as a PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := resolveTemplate(cmd)
		if err != nil {
			return err
		}
		paper, err := export.PaperByName(cfg.Export.Paper)
		if err != nil {
			return err
		}
		outDir := cfg.Export.OutputDir
		stringFlag(cmd, "output-dir", &outDir)

		ex := export.NewExporter(newRasterizer(), export.PDFAssembler{}, &markdown.Toaster{W: os.Stderr}, logger, export.Options{
			Scale:     cfg.Export.Scale,
			Paper:     paper,
			OutputDir: outDir,
		})
		doc := st.Document()
		warnIfEmpty(cmd, doc)

		var path string
		run := func(ctx context.Context) error {
			path, err = ex.Export(ctx, doc, tmpl)
			return err
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			var runErr error
			if err := spinner.New().
				Title("Generating PDF...").
				Context(cmd.Context()).
				Action(func() { runErr = run(cmd.Context()) }).
				Run(); err != nil {
				return err
			}
			err = runErr
		} else {
			err = run(cmd.Context())
		}
		if err != nil {
			// The exporter already reported the failure.
			cmd.SilenceErrors = true
			return errExportFailed
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output-dir", "", "directory to write the PDF to (default from config)")
	exportCmd.Flags().StringP("template", "t", "", "template to use instead of the selected one")
	rootCmd.AddCommand(exportCmd)
}
