// Package source yields raw sample timestamps from a literal argument,
// a file of newline-delimited stamps, or standard input.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrFileNotReadable is returned when the argument names a path that
// exists but cannot be read as a file.
var ErrFileNotReadable = errors.New("file not readable")

// StdinArg is the argument that selects standard input explicitly.
const StdinArg = "-"

const maxLineSize = 1024 * 1024

// Kind identifies where samples come from.
type Kind int

const (
	KindLiteral Kind = iota + 1
	KindFile
	KindStdin
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindFile:
		return "file"
	case KindStdin:
		return "stdin"
	default:
		return "unknown"
	}
}

// Source is a single-pass sequence of raw samples, read like a bufio.Scanner.
// File and stdin sources skip blank lines.
type Source struct {
	kind    Kind
	name    string
	scanner *bufio.Scanner
	closer  io.Closer

	literal string
	text    string
	line    int
	done    bool
}

// Open picks the source for arg. When present is false or arg is "-",
// samples are read from stdin. An existing path is opened as a file;
// anything else is a single literal sample.
func Open(arg string, present bool, stdin io.Reader) (*Source, error) {
	if !present || arg == StdinArg {
		return FromReader(KindStdin, "stdin", stdin), nil
	}

	info, err := os.Stat(arg)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotReadable, arg)
		}
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFileNotReadable, err)
		}
		s := FromReader(KindFile, arg, f)
		s.closer = f
		return s, nil
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%w: %v", ErrFileNotReadable, err)
	default:
		return Literal(arg), nil
	}
}

// Literal returns a source yielding exactly one sample.
func Literal(text string) *Source {
	return &Source{kind: KindLiteral, name: "argument", literal: text}
}

// FromReader returns a source yielding the lines of r.
func FromReader(kind Kind, name string, r io.Reader) *Source {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Source{kind: kind, name: name, scanner: scanner}
}

// Scan advances to the next sample, reporting whether there is one.
func (s *Source) Scan() bool {
	if s.done {
		return false
	}

	if s.scanner == nil {
		s.text = s.literal
		s.line = 1
		s.done = true
		return true
	}

	for s.scanner.Scan() {
		s.line++
		text := strings.TrimRight(s.scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		s.text = text
		return true
	}
	s.done = true
	return false
}

// Text returns the current sample.
func (s *Source) Text() string {
	return s.text
}

// Line returns the 1-based line number of the current sample.
func (s *Source) Line() int {
	return s.line
}

// Err returns the first read error, if any.
func (s *Source) Err() error {
	if s.scanner == nil {
		return nil
	}
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", s.name, err)
	}
	return nil
}

// Kind returns where the samples come from.
func (s *Source) Kind() Kind {
	return s.kind
}

// Name returns a human-readable origin, e.g. the file path.
func (s *Source) Name() string {
	return s.name
}

// Close releases the underlying file, if any. Stdin is never closed.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
