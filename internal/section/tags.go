package section

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// TagList edits an ordered list of unique strings in place.
type TagList struct {
	values *[]string
}

// NewTagList wraps values. The slice is updated on every change.
func NewTagList(values *[]string) *TagList {
	if *values == nil {
		*values = []string{}
	}
	return &TagList{values: values}
}

// Add appends v after trimming. Blank and already present values are
// ignored. It reports whether the list changed.
func (t *TagList) Add(v string) bool {
	out, ok := addTag(*t.values, v)
	if ok {
		*t.values = out
	}
	return ok
}

// Remove drops v from the list and reports whether it was present.
func (t *TagList) Remove(v string) bool {
	out, ok := removeTag(*t.values, v)
	if ok {
		*t.values = out
	}
	return ok
}

func (t *TagList) Values() []string {
	return append([]string{}, *t.values...)
}

func addTag(list []string, v string) ([]string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || slice.Contains(list, v) {
		return list, false
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v), true
}

func removeTag(list []string, v string) ([]string, bool) {
	v = strings.TrimSpace(v)
	if !slice.Contains(list, v) {
		return list, false
	}
	return slice.FindAll(list, func(src string) bool { return src != v }), true
}
