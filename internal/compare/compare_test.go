package compare

import (
	"strings"
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	ref := time.Date(2022, time.May, 14, 3, 13, 6, 0, time.UTC)
	before := ref.Add(-time.Nanosecond)
	after := ref.Add(time.Nanosecond)

	tests := []struct {
		name   string
		sample time.Time
		op     Operator
		want   bool
	}{
		{"gt before", before, Gt, false},
		{"gt equal", ref, Gt, false},
		{"gt after", after, Gt, true},
		{"lt before", before, Lt, true},
		{"lt equal", ref, Lt, false},
		{"lt after", after, Lt, false},
		{"eq before", before, Eq, false},
		{"eq equal", ref, Eq, true},
		{"eq after", after, Eq, false},
		{"ge before", before, Ge, false},
		{"ge equal", ref, Ge, true},
		{"ge after", after, Ge, true},
		{"le before", before, Le, true},
		{"le equal", ref, Le, true},
		{"le after", after, Le, false},
		{"eq other zone", ref.In(time.FixedZone("X", 3600)), Eq, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.sample, ref, tt.op); got != tt.want {
				t.Errorf("Compare(%v, %v, %s) = %v, want %v", tt.sample, ref, tt.op, got, tt.want)
			}
		})
	}
}

func TestCompareLaws(t *testing.T) {
	base := time.Date(2022, time.May, 13, 3, 13, 6, 0, time.Local)
	instants := []time.Time{
		base.Add(-time.Hour),
		base,
		base.Add(time.Millisecond),
		base.AddDate(1, 0, 0),
	}

	for _, a := range instants {
		for _, b := range instants {
			gt, eq, lt := Compare(a, b, Gt), Compare(a, b, Eq), Compare(a, b, Lt)

			holds := 0
			for _, v := range []bool{gt, eq, lt} {
				if v {
					holds++
				}
			}
			if holds != 1 {
				t.Errorf("trichotomy violated for %v vs %v: gt=%v eq=%v lt=%v", a, b, gt, eq, lt)
			}
			if Compare(a, b, Ge) != (gt || eq) {
				t.Errorf("ge != gt||eq for %v vs %v", a, b)
			}
			if Compare(a, b, Le) != (lt || eq) {
				t.Errorf("le != lt||eq for %v vs %v", a, b)
			}
		}
	}
}

func TestCompareSelf(t *testing.T) {
	now := time.Now()
	if !Compare(now, now, Eq) {
		t.Error("expected instant to equal itself")
	}
	if Compare(now, now, Gt) || Compare(now, now, Lt) {
		t.Error("expected gt and lt to be false against itself")
	}
}

func TestOperatorNames(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range Operators() {
		name := op.String()
		if seen[name] {
			t.Errorf("duplicate operator name %q", name)
		}
		seen[name] = true
		if !strings.Contains(op.Description(), op.Symbol()) {
			t.Errorf("%s description %q does not mention %q", name, op.Description(), op.Symbol())
		}
	}
	if got := Operator(0).String(); got != "Operator(0)" {
		t.Errorf("Operator(0).String() = %q", got)
	}
}
