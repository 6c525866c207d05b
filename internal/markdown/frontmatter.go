package markdown

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Parse reads YAML frontmatter and body from r into T.
func Parse[T any](r io.Reader) (T, string, error) {
	var meta T
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, strings.TrimSpace(string(body)), nil
}

// Marshal serializes meta as YAML frontmatter followed by body.
func Marshal[T any](meta T, body string) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// EditDraft writes meta and body to a temporary markdown file, hands its
// path to open (normally an external editor) and parses the result back.
// Entry fields live in the frontmatter; the free-text description is the
// body.
func EditDraft[T any](meta T, body string, open func(path string) error) (T, string, error) {
	var zero T
	data, err := Marshal(meta, body)
	if err != nil {
		return zero, "", err
	}

	f, err := os.CreateTemp("", "resumecraft-*.md")
	if err != nil {
		return zero, "", fmt.Errorf("creating draft: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return zero, "", fmt.Errorf("writing draft: %w", err)
	}
	if err := f.Close(); err != nil {
		return zero, "", fmt.Errorf("closing draft: %w", err)
	}

	if err := open(path); err != nil {
		return zero, "", err
	}

	edited, err := os.Open(path)
	if err != nil {
		return zero, "", fmt.Errorf("reading draft: %w", err)
	}
	defer edited.Close()
	return Parse[T](edited)
}
