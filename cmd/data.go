package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace the resume with a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := st.Import(f)
		if err != nil {
			return reportInvalid(fmt.Errorf("importing %s: %w", args[0], err))
		}
		fmt.Printf("Imported %d work, %d education, %d project entries and %d skills\n",
			len(doc.WorkExperience), len(doc.Education), len(doc.Projects), len(doc.Skills))
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the resume as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return st.Dump(cmd.OutOrStdout())
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the resume to an empty document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := confirm(cmd, "Erase all resume data? The template choice is kept."); err != nil {
			return err
		}
		st.Clear()
		fmt.Println("Cleared resume data")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(clearCmd)
}
