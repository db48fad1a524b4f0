package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRetriesUntilValid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		retries int
	}{
		{"code", "1224\n", "Centennial High School", 0},
		{"name", "Louise Dean School\n", "Louise Dean School", 0},
		{"invalid then code", "Nowhere\n9823\n", "Central Memorial High School", 1},
		{"case sensitive", "centennial high school\n1224\n", "Centennial High School", 1},
		{"crlf", "9830\r\n", "National Sport School", 0},
		{"blank lines", "\n\n9865\n", "Lester B. Pearson High School", 2},
		{"line longer than a scanner buffer", strings.Repeat("x", 70000) + "\n1224\n", "Centennial High School", 1},
		{"no trailing newline", "Nowhere\n9826", "Ernest Manning High School", 1},
	}
	dir := testDirectory(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s, err := NewResolver(dir, strings.NewReader(tt.input), &out).Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name)
			assert.Equal(t, tt.retries+1, strings.Count(out.String(), PromptText))
			assert.Equal(t, tt.retries, strings.Count(out.String(), InvalidInputMessage))
		})
	}
}

func TestResolveEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := NewResolver(testDirectory(t), strings.NewReader("bogus\n"), &out).Resolve()
	assert.True(t, errors.Is(err, ErrNoInput))
	assert.Contains(t, out.String(), InvalidInputMessage)
}

func TestCheck(t *testing.T) {
	r := NewResolver(testDirectory(t), strings.NewReader(""), &bytes.Buffer{})
	s, ok := r.Check("1679")
	require.True(t, ok)
	assert.Equal(t, "Robert Thirsk School", s.Name)
	assert.Equal(t, 1, s.Index)

	_, ok = r.Check(" 1679")
	assert.False(t, ok)
}
