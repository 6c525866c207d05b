package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/resumecraft/internal/repofile"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link <data-dir>",
	Short: "Use a different data directory below the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := repofile.Write(cwd, args[0]); err != nil {
			return err
		}
		fmt.Printf("Linked %s to %s\n", repofile.FileName, args[0])
		return nil
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the data directory link in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		removed, err := repofile.Remove(cwd)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Println("No link in this directory")
			return nil
		}
		fmt.Printf("Removed %s\n", repofile.FileName)
		return nil
	},
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show which data directory is in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), dataDir)
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if linked, dir, _ := repofile.Find(cwd); linked != "" && !cmd.Flags().Changed("data-dir") {
			fmt.Fprintf(cmd.OutOrStdout(), "(from %s)\n", filepath.Join(dir, repofile.FileName))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(whereCmd)
}
