// Package service runs a timewarp comparison: it resolves the adjusted
// reference once, then parses and compares each sample in input order.
package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spiffcs/timewarp/internal/compare"
	"github.com/spiffcs/timewarp/internal/constants"
	"github.com/spiffcs/timewarp/internal/duration"
	"github.com/spiffcs/timewarp/internal/log"
	"github.com/spiffcs/timewarp/internal/source"
	"github.com/spiffcs/timewarp/internal/timestamp"
	"golang.org/x/term"
)

var (
	// ErrMissingArgument is returned when a required input is absent.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrSamplesFailed is returned in keep-going mode when at least one
	// sample could not be parsed.
	ErrSamplesFailed = errors.New("some samples could not be compared")
)

// Request describes one invocation.
type Request struct {
	RefTime   string // empty means now
	Offset    string
	Sample    string
	HasSample bool // false reads samples from stdin
	Format    string
	Operator  compare.Operator
	KeepGoing bool
}

// Resolution is the reference instant before and after the offset.
type Resolution struct {
	Reference time.Time
	Offset    duration.Duration
	Adjusted  time.Time
}

// Service executes requests against its output and input streams.
type Service struct {
	out   io.Writer
	stdin io.Reader
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithOutput sets where results are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.out = w
	}
}

// WithStdin sets the reader used when no sample argument is given.
func WithStdin(r io.Reader) Option {
	return func(s *Service) {
		s.stdin = r
	}
}

// WithClock sets the source of the current time used when no reference
// time is given.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service writing to stdout and reading stdin.
func New(opts ...Option) *Service {
	s := &Service{
		out:   os.Stdout,
		stdin: os.Stdin,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve parses the offset and the reference time and applies the
// offset once. An empty offset is a syntax error; callers report an
// absent one as ErrMissingArgument.
func (s *Service) Resolve(refTime, offset, format string) (Resolution, error) {
	d, err := duration.Parse(offset)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid --offset: %w", err)
	}
	if log.IsDebug() {
		log.Debug("parsed offset", "expr", offset, "offset", d.String())
	}

	var ref time.Time
	if refTime == "" {
		ref = s.now().In(time.Local)
		log.Debug("no reference time given, using now", "ref", ref)
	} else {
		ref, err = timestamp.Parse(refTime, format)
		if err != nil {
			return Resolution{}, fmt.Errorf("invalid --ref-time: %w", err)
		}
	}

	res := Resolution{
		Reference: ref,
		Offset:    d,
		Adjusted:  d.Apply(ref),
	}
	log.Info("resolved reference", "ref", res.Reference, "offset", d.String(), "adjusted", res.Adjusted)
	return res, nil
}

// Run prints one boolean per sample. It stops at the first malformed
// sample unless req.KeepGoing is set; results printed before a failure
// stay printed.
func (s *Service) Run(req Request) error {
	if req.Operator == 0 {
		return fmt.Errorf("%w: comparison operator (gt, lt, eq, ge, le)", ErrMissingArgument)
	}

	res, err := s.Resolve(req.RefTime, req.Offset, req.Format)
	if err != nil {
		return err
	}

	src, err := source.Open(req.Sample, req.HasSample, s.stdin)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn("failed to close sample source", "source", src.Name(), "error", err)
		}
	}()

	log.Info("reading samples", "source", src.Kind(), "name", src.Name(), "op", req.Operator)
	if src.Kind() == source.KindStdin && isTerminal(s.stdin) {
		log.Warn("reading samples from the terminal, one per line; end with Ctrl-D")
	}

	var total, failed int
	for src.Scan() {
		total++
		sample, err := timestamp.Parse(src.Text(), req.Format)
		if err != nil {
			if src.Kind() != source.KindLiteral {
				err = fmt.Errorf("%s:%d: %w", src.Name(), src.Line(), err)
			}
			if !req.KeepGoing {
				return err
			}
			log.Error("skipping sample", "error", err)
			failed++
			continue
		}

		result := compare.Compare(sample, res.Adjusted, req.Operator)
		if log.IsTrace() {
			log.Trace("compared", "line", src.Line(), "sample", timestamp.Format(sample, req.Format),
				"op", req.Operator.Symbol(), "result", result)
		}
		if err := s.print(result); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSamplesFailed, failed, total)
	}
	return nil
}

func (s *Service) print(result bool) error {
	text := constants.ResultFalse
	if result {
		text = constants.ResultTrue
	}
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
