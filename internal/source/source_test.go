package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s *Source) []string {
	t.Helper()
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	require.NoError(t, s.Err())
	return lines
}

func TestOpenStdin(t *testing.T) {
	stdin := strings.NewReader("Fri May 13 03:13:06 2022\nSat May 14 03:13:06 2022\n")

	s, err := Open("", false, stdin)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, KindStdin, s.Kind())
	assert.Equal(t, []string{"Fri May 13 03:13:06 2022", "Sat May 14 03:13:06 2022"}, collect(t, s))
}

func TestOpenDashIsStdin(t *testing.T) {
	s, err := Open(StdinArg, true, strings.NewReader("a\n"))
	require.NoError(t, err)
	assert.Equal(t, KindStdin, s.Kind())
	assert.Equal(t, []string{"a"}, collect(t, s))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	content := "one\r\n\n   \ntwo\nthree"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s, err := Open(path, true, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, KindFile, s.Kind())
	assert.Equal(t, path, s.Name())

	var lines []string
	var numbers []int
	for s.Scan() {
		lines = append(lines, s.Text())
		numbers = append(numbers, s.Line())
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, []int{1, 4, 5}, numbers)
	assert.False(t, s.Scan(), "source is single-pass")
}

func TestBlankLinesSkipped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		lines []int
	}{
		{"only blank lines", "\n \n\t\r\n", nil, nil},
		{"leading blank lines", "\n\n  \nx\n", []string{"x"}, []int{4}},
		{"blank lines between samples", "x\n \t \ny\n\n", []string{"x", "y"}, []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromReader(KindStdin, "stdin", strings.NewReader(tt.input))
			var got []string
			var lines []int
			for s.Scan() {
				got = append(got, s.Text())
				lines = append(lines, s.Line())
			}
			require.NoError(t, s.Err())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.lines, lines)
		})
	}
}

func TestBlankLiteralIsYielded(t *testing.T) {
	assert.Equal(t, []string{"  "}, collect(t, Literal("  ")))
}

func TestOpenLiteral(t *testing.T) {
	s, err := Open("Fri May 13 03:13:06 2022", true, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, KindLiteral, s.Kind())
	assert.Equal(t, []string{"Fri May 13 03:13:06 2022"}, collect(t, s))
	assert.False(t, s.Scan())
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir(), true, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotReadable))
}

func TestOpenUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	path := filepath.Join(t.TempDir(), "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0000))

	_, err := Open(path, true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotReadable)
}

func TestCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0600))

	s, err := Open(path, true, nil)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "literal", KindLiteral.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "stdin", KindStdin.String())
}
