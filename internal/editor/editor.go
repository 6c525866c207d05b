// Package editor opens files in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// command returns the editor invocation split into program and arguments,
// so values like "code --wait" work.
func command() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if f := strings.Fields(os.Getenv(env)); len(f) > 0 {
			return f
		}
	}
	return []string{"vi"}
}

// Open blocks until the editor exits.
func Open(path string) error {
	argv := command()
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", strings.Join(argv, " "), err)
	}
	return nil
}
