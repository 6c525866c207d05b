package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	validPattern = regexp.MustCompile(`^(WORK|EDU|PROJ)-[23456789A-HJ-NP-Za-km-z]{22}$`)
	types        = []EntityType{Work, Education, Project}
)

func TestNew_Format(t *testing.T) {
	for _, et := range types {
		assert.Regexp(t, validPattern, New(et))
	}
}

func TestNew_Uniqueness(t *testing.T) {
	for _, et := range types {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := New(et)
			assert.False(t, seen[id], "collision: %s", id)
			seen[id] = true
		}
	}
}

func TestTypeOf_RoundTrip(t *testing.T) {
	for _, et := range types {
		got, err := TypeOf(New(et))
		require.NoError(t, err)
		assert.Equal(t, et, got)
	}
}

func TestTypeOf_Malformed(t *testing.T) {
	tests := []string{
		"",
		"WORK",
		"WORK-",
		"WORK-abc",                     // too short
		"WORK-0000000000000000000000",  // 0 not in alphabet
		"WORK-lllllllllllllllllllllll", // l not in alphabet, too long
		"WORK-23456789AB-DEFGHJKLMNP",
		"TASK-23456789ABCDEFGHJKLMNP",
		"work-23456789ABCDEFGHJKLMNP",
	}
	for _, s := range tests {
		_, err := TypeOf(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestExpect(t *testing.T) {
	assert.NoError(t, Expect(New(Work), Work))

	err := Expect(New(Project), Work)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a work experience id")

	assert.Error(t, Expect("WORK-missing", Work))
}

func TestNoun(t *testing.T) {
	assert.Equal(t, "work experience", Work.Noun())
	assert.Equal(t, "education", Education.Noun())
	assert.Equal(t, "project", Project.Noun())
}
