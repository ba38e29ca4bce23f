package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spiffcs/timewarp/internal/compare"
	"github.com/spiffcs/timewarp/internal/duration"
	"github.com/spiffcs/timewarp/internal/source"
	"github.com/spiffcs/timewarp/internal/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refTime = "Fri May 13 03:13:06 2022"

func newTestService(stdin string) (*Service, *bytes.Buffer) {
	var out bytes.Buffer
	return New(WithOutput(&out), WithStdin(strings.NewReader(stdin))), &out
}

func writeSamples(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestRunLiteral(t *testing.T) {
	svc, out := newTestService("")

	err := svc.Run(Request{
		RefTime:   refTime,
		Offset:    "1 days",
		Sample:    "Sat May 14 03:13:06 2022",
		HasSample: true,
		Operator:  compare.Eq,
	})
	require.NoError(t, err)
	assert.Equal(t, "true\n", out.String())
}

func TestRunFile(t *testing.T) {
	path := writeSamples(t,
		"Sat May 14 03:13:05 2022",
		"Sat May 14 03:13:06 2022",
		"Sat May 14 03:13:07 2022",
	)

	tests := []struct {
		op   compare.Operator
		want string
	}{
		{compare.Gt, "false\nfalse\ntrue\n"},
		{compare.Lt, "true\nfalse\nfalse\n"},
		{compare.Eq, "false\ntrue\nfalse\n"},
		{compare.Ge, "false\ntrue\ntrue\n"},
		{compare.Le, "true\ntrue\nfalse\n"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			svc, out := newTestService("")
			err := svc.Run(Request{
				RefTime:   refTime,
				Offset:    "1 days",
				Sample:    path,
				HasSample: true,
				Operator:  tt.op,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunStdin(t *testing.T) {
	svc, out := newTestService("Fri May 13 03:13:06 2022\nFri May 13 03:13:07 2022\n")

	err := svc.Run(Request{
		RefTime:  refTime,
		Offset:   "500ms",
		Operator: compare.Gt,
	})
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n", out.String())
}

func TestRunFailFast(t *testing.T) {
	path := writeSamples(t,
		"Sat May 14 03:13:07 2022",
		"not a timestamp",
		"Sat May 14 03:13:07 2022",
	)
	svc, out := newTestService("")

	err := svc.Run(Request{
		RefTime:   refTime,
		Offset:    "1 days",
		Sample:    path,
		HasSample: true,
		Operator:  compare.Gt,
	})
	require.Error(t, err)

	var perr *timestamp.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "not a timestamp", perr.Text)
	assert.Contains(t, err.Error(), ":2:")
	assert.Equal(t, "true\n", out.String(), "results before the failure stay printed")
}

func TestRunImpossibleSample(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		offset string
		sample string
	}{
		{"day past end of month", "Wed Mar 2 03:13:06 2022", "0s", "Mon Feb 30 03:13:06 2022"},
		{"weekday contradicts date", refTime, "1 day", "Mon May 14 03:13:06 2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, out := newTestService("")
			err := svc.Run(Request{
				RefTime:   tt.ref,
				Offset:    tt.offset,
				Sample:    tt.sample,
				HasSample: true,
				Operator:  compare.Eq,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, timestamp.ErrImpossible)
			assert.Empty(t, out.String())
		})
	}
}

func TestRunKeepGoing(t *testing.T) {
	path := writeSamples(t,
		"Sat May 14 03:13:07 2022",
		"not a timestamp",
		"Sat May 14 03:13:05 2022",
	)
	svc, out := newTestService("")

	err := svc.Run(Request{
		RefTime:   refTime,
		Offset:    "1 days",
		Sample:    path,
		HasSample: true,
		Operator:  compare.Gt,
		KeepGoing: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSamplesFailed)
	assert.Equal(t, "true\nfalse\n", out.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "empty offset",
			req:     Request{RefTime: refTime, Operator: compare.Eq, Sample: refTime, HasSample: true},
			wantErr: duration.ErrInvalidSyntax,
		},
		{
			name:    "missing operator",
			req:     Request{RefTime: refTime, Offset: "1d", Sample: refTime, HasSample: true},
			wantErr: ErrMissingArgument,
		},
		{
			name:    "bad offset syntax",
			req:     Request{RefTime: refTime, Offset: "   ", Operator: compare.Eq, Sample: refTime, HasSample: true},
			wantErr: duration.ErrInvalidSyntax,
		},
		{
			name:    "unknown unit",
			req:     Request{RefTime: refTime, Offset: "5 fortnights", Operator: compare.Eq, Sample: refTime, HasSample: true},
			wantErr: duration.ErrUnknownUnit,
		},
		{
			name:    "overflow",
			req:     Request{RefTime: refTime, Offset: "300000 days", Operator: compare.Eq, Sample: refTime, HasSample: true},
			wantErr: duration.ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, out := newTestService("")
			err := svc.Run(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestRunBadRefTime(t *testing.T) {
	svc, _ := newTestService("")
	err := svc.Run(Request{
		RefTime:   "yesterday",
		Offset:    "1d",
		Sample:    refTime,
		HasSample: true,
		Operator:  compare.Eq,
	})

	var perr *timestamp.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "yesterday", perr.Text)
	assert.Equal(t, timestamp.DefaultFormat, perr.Format)
}

func TestRunDirectoryNotReadable(t *testing.T) {
	svc, _ := newTestService("")
	err := svc.Run(Request{
		RefTime:   refTime,
		Offset:    "1d",
		Sample:    t.TempDir(),
		HasSample: true,
		Operator:  compare.Eq,
	})
	assert.ErrorIs(t, err, source.ErrFileNotReadable)
}

func TestResolveDefaultsToNow(t *testing.T) {
	now := time.Date(2024, time.February, 28, 12, 0, 0, 0, time.Local)
	var out bytes.Buffer
	svc := New(WithOutput(&out), WithClock(func() time.Time { return now }))

	res, err := svc.Resolve("", "1 day", "")
	require.NoError(t, err)
	assert.True(t, now.Equal(res.Reference))
	assert.True(t, now.Add(24*time.Hour).Equal(res.Adjusted))

	sample := timestamp.Format(res.Adjusted, "")
	err = svc.Run(Request{Offset: "1 day", Sample: sample, HasSample: true, Operator: compare.Eq})
	require.NoError(t, err)
	assert.Equal(t, "true\n", out.String())
}

func TestResolveZeroOffset(t *testing.T) {
	svc, _ := newTestService("")
	res, err := svc.Resolve(refTime, "0s", "")
	require.NoError(t, err)
	assert.True(t, res.Reference.Equal(res.Adjusted))
	assert.True(t, res.Offset.IsZero())
}

func TestResolveCustomFormat(t *testing.T) {
	svc, _ := newTestService("")
	res, err := svc.Resolve("2022-05-13 03:13:06", "1 month", "%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)
	want := time.Date(2022, time.June, 13, 3, 13, 6, 0, time.Local)
	assert.True(t, want.Equal(res.Adjusted), "got %v, want %v", res.Adjusted, want)
}
