package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/resumecraft/internal/config"
	"github.com/rogersnm/resumecraft/internal/logging"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/repofile"
	"github.com/rogersnm/resumecraft/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	dataDir string
	st      *store.Store
	cfg     *config.Config
	logger  *zap.Logger
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".resumecraft-data")
	}
	return filepath.Join(home, ".resumecraft")
}

var rootCmd = &cobra.Command{
	Use:     "resumecraft",
	Short:   "Build a resume in the terminal and export it as a PDF",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("data-dir") {
			if cwd, err := os.Getwd(); err == nil {
				if linked, _, _ := repofile.Find(cwd); linked != "" {
					dataDir = linked
				}
			}
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logPath := cfg.Log.File
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(dataDir, logPath)
		}
		logger, err = logging.New(logPath, cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}

		st = store.New(store.NewFileBackend(filepath.Join(dataDir, "storage")), logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"personal set": {
				Examples: []mtp.Example{
					{Description: "Set name and email", Command: "resumecraft personal set --full-name \"Jane Doe\" --email jane@example.com"},
					{Description: "Fill in personal info interactively", Command: "resumecraft personal set -i"},
				},
			},
			"experience add": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "ID of the new work experience entry",
				},
				Examples: []mtp.Example{
					{Description: "Add a current position", Command: "resumecraft experience add --company Acme --position Engineer --start 2021-03 --current --highlight \"Cut p99 latency by 40%\""},
					{Description: "Write the entry in $EDITOR", Command: "resumecraft experience add --editor"},
				},
			},
			"experience edit": {
				Examples: []mtp.Example{
					{Description: "Change the end date", Command: "resumecraft experience edit WORK-XXXX --end 2024-01"},
					{Description: "Add a highlight", Command: "resumecraft experience edit WORK-XXXX --add-highlight \"Led the migration\""},
				},
			},
			"experience remove": {
				Examples: []mtp.Example{
					{Description: "Remove an entry", Command: "resumecraft experience remove WORK-XXXX"},
				},
			},
			"education add": {
				Examples: []mtp.Example{
					{Description: "Add a degree", Command: "resumecraft education add --institution MIT --degree BSc --field \"Computer Science\" --end 2019"},
				},
			},
			"project add": {
				Examples: []mtp.Example{
					{Description: "Add a project with technologies", Command: "resumecraft project add --name resumecraft --tech Go --tech Chrome"},
				},
			},
			"skill add": {
				Examples: []mtp.Example{
					{Description: "Add several skills", Command: "resumecraft skill add Go SQL Kubernetes"},
				},
			},
			"template set": {
				Examples: []mtp.Example{
					{Description: "Switch to the classic template", Command: "resumecraft template set classic"},
					{Description: "Pick a template interactively", Command: "resumecraft template set"},
				},
			},
			"preview": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Formatted resume as styled terminal text, markdown, or a standalone HTML page",
				},
				Examples: []mtp.Example{
					{Description: "Preview in the terminal", Command: "resumecraft preview"},
					{Description: "Write the HTML preview to a file", Command: "resumecraft preview --format html > resume.html"},
				},
			},
			"export": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Path of the written PDF",
				},
				Examples: []mtp.Example{
					{Description: "Export with the selected template", Command: "resumecraft export"},
					{Description: "Export the classic template to ~/Documents", Command: "resumecraft export --template classic --output-dir ~/Documents"},
				},
			},
			"import": {
				Examples: []mtp.Example{
					{Description: "Replace the resume with a JSON document", Command: "resumecraft import resume.json"},
				},
			},
			"dump": {
				Stdout: &mtp.IODescriptor{
					ContentType: "application/json",
					Description: "The full resume document",
				},
			},
			"clear": {
				Examples: []mtp.Example{
					{Description: "Reset the resume (interactive confirm)", Command: "resumecraft clear"},
					{Description: "Reset the resume (skip confirm)", Command: "resumecraft clear --force"},
				},
			},
			"link": {
				Examples: []mtp.Example{
					{Description: "Keep this directory's resume in ./resume-data", Command: "resumecraft link ./resume-data"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}

// confirm asks for confirmation unless --force is set.
func confirm(cmd *cobra.Command, msg string) error {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}
	var ok bool
	if err := huh.NewConfirm().Title(msg).Value(&ok).Run(); err != nil || !ok {
		return fmt.Errorf("cancelled")
	}
	return nil
}

// reportInvalid prints per-field validation messages. Other errors are
// returned unchanged.
func reportInvalid(err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprint(os.Stderr, markdown.RenderValidation(verr))
		return fmt.Errorf("not saved: %d invalid field(s)", len(verr.Fields))
	}
	return err
}
