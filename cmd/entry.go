package cmd

import (
	"fmt"

	"github.com/rogersnm/resumecraft/internal/editor"
	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/markdown"
	"github.com/spf13/cobra"
)

// saver is implemented by the collection editors in internal/section.
type saver[T any] interface {
	Save(draft T) (T, error)
}

// describable entries keep their description in the draft body when edited
// in $EDITOR.
type describable[T any] struct {
	get func(T) string
	set func(*T, string)
}

// fillDraft applies the interactive form or the $EDITOR draft, depending on
// the flags given.
func fillDraft[T any](cmd *cobra.Command, draft *T, form func(*T) error, desc describable[T]) error {
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		if err := form(draft); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
	}
	if useEditor, _ := cmd.Flags().GetBool("editor"); useEditor {
		meta, body, err := markdown.EditDraft(*draft, desc.get(*draft), editor.Open)
		if err != nil {
			return err
		}
		desc.set(&meta, body)
		*draft = meta
	}
	return nil
}

func saveDraft[T any](ed saver[T], draft T) (T, error) {
	saved, err := ed.Save(draft)
	if err != nil {
		return saved, reportInvalid(err)
	}
	return saved, nil
}

func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("interactive", "i", false, "fill in the entry with an interactive form")
	cmd.Flags().Bool("editor", false, "write the entry in $EDITOR")
}

// stringFlag copies the flag value into dst when the flag was given.
func stringFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

// entryID accepts exactly one argument holding an id of type t.
func entryID(t id.EntityType) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		return id.Expect(args[0], t)
	}
}
