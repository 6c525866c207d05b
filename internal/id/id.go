package id

import (
	"fmt"
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

// Entry ids read <PREFIX>-<suffix>. The prefix names the resume section and
// the suffix is a shortuuid in its default base57 alphabet.
const (
	alphabet  = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	suffixLen = 22
)

type EntityType string

const (
	Work      EntityType = "WORK"
	Education EntityType = "EDU"
	Project   EntityType = "PROJ"
)

var nouns = map[EntityType]string{
	Work:      "work experience",
	Education: "education",
	Project:   "project",
}

// Noun is the user-facing name of the section t identifies.
func (t EntityType) Noun() string {
	return nouns[t]
}

// New returns an opaque identifier for a new entry of type t.
func New(t EntityType) string {
	return string(t) + "-" + shortuuid.New()
}

// TypeOf returns the section an id belongs to, or an error when the id was
// not produced by New.
func TypeOf(s string) (EntityType, error) {
	prefix, suffix, ok := strings.Cut(s, "-")
	if !ok {
		return "", fmt.Errorf("malformed id %q: missing separator", s)
	}
	t := EntityType(prefix)
	if _, known := nouns[t]; !known {
		return "", fmt.Errorf("malformed id %q: unknown prefix %q", s, prefix)
	}
	if len(suffix) != suffixLen || strings.Trim(suffix, alphabet) != "" {
		return "", fmt.Errorf("malformed id %q", s)
	}
	return t, nil
}

// Expect fails unless s is a well-formed id of type t.
func Expect(s string, t EntityType) error {
	got, err := TypeOf(s)
	if err != nil {
		return err
	}
	if got != t {
		return fmt.Errorf("%s is not a %s id", s, t.Noun())
	}
	return nil
}
