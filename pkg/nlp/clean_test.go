package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"Whitespace only", " \n\t \n ", ""},
		{"Plain line unchanged", "Software Engineer", "Software Engineer"},
		{"CRLF unified", "line one\r\nline two", "line one\nline two"},
		{"Bare CR unified", "line one\rline two", "line one\nline two"},
		{"Horizontal whitespace runs collapsed", "name:    John \t Doe", "name: John Doe"},
		{"Single tab preserved", "name:\tJohn", "name:\tJohn"},
		{"Adjacent duplicate lines dropped", "A\nA\nB", "A\nB"},
		{"Non-adjacent duplicate lines kept", "A\nB\nA", "A\nB\nA"},
		{"Lines stripped", "  padded line  \n next ", "padded line\nnext"},
		{"Duplicate paragraphs dropped in order", "P1\n\nP2\n\nP1", "P1\n\nP2"},
		{"Blank line runs collapse", "P1\n\n\n\nP2", "P1\n\nP2"},
		{"Leading and trailing trimmed", "\n\nEducation\n\n", "Education"},
		{
			"Multi-line paragraph dedup",
			"Skills\nGo\n\nProjects\n\nSkills\nGo",
			"Skills\nGo\n\nProjects",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"A\nA\nB",
		"P1\n\nP2\n\nP1",
		"  a   b \r\n\r\n c\nc\nd  \n\n\n e ",
		"Education\n\nEducation\n\nExperience\nExperience",
	}
	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "CleanText must be idempotent for %q", in)
	}
}
