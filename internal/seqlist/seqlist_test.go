package seqlist

import (
	"errors"
	"slices"
	"testing"
)

// buildList appends each value in order.
func buildList(t *testing.T, values ...string) *List[string] {
	t.Helper()
	l := New[string]()
	for i, v := range values {
		if err := l.InsertAt(i, v); err != nil {
			t.Fatalf("failed to seed list with %q at %d: %v", v, i, err)
		}
	}
	return l
}

func TestInsertAt(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		position int
		value    string
		want     []string
	}{
		{
			name:     "empty list far position clamps to front",
			initial:  nil,
			position: 5,
			value:    "x",
			want:     []string{"x"},
		},
		{
			name:     "empty list position zero",
			initial:  nil,
			position: 0,
			value:    "x",
			want:     []string{"x"},
		},
		{
			name:     "middle splice",
			initial:  []string{"a", "b", "c"},
			position: 1,
			value:    "z",
			want:     []string{"a", "z", "b", "c"},
		},
		{
			name:     "far position clamps to end",
			initial:  []string{"a", "b"},
			position: 100,
			value:    "z",
			want:     []string{"a", "b", "z"},
		},
		{
			name:     "position zero prepends",
			initial:  []string{"a"},
			position: 0,
			value:    "z",
			want:     []string{"z", "a"},
		},
		{
			name:     "exact end appends",
			initial:  []string{"a", "b"},
			position: 2,
			value:    "z",
			want:     []string{"a", "b", "z"},
		},
		{
			name:     "last existing index shifts the old last",
			initial:  []string{"a", "b", "c"},
			position: 2,
			value:    "z",
			want:     []string{"a", "b", "z", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := buildList(t, tt.initial...)
			before := l.Len()

			if err := l.InsertAt(tt.position, tt.value); err != nil {
				t.Fatalf("InsertAt(%d, %q) failed: %v", tt.position, tt.value, err)
			}

			if got := l.Slice(); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got := l.Len(); got != before+1 {
				t.Errorf("Len() = %d, want %d", got, before+1)
			}
		})
	}
}

func TestInsertAtNegativePosition(t *testing.T) {
	for _, policy := range []Policy{ClampToEnd, RejectOutOfRange} {
		t.Run(policy.String(), func(t *testing.T) {
			l := NewWithPolicy[string](policy)
			if err := l.InsertAt(-1, "x"); !errors.Is(err, ErrNegativePosition) {
				t.Errorf("InsertAt(-1) error = %v, want ErrNegativePosition", err)
			}
			if got := l.Len(); got != 0 {
				t.Errorf("Len() after rejected insert = %d, want 0", got)
			}
		})
	}
}

func TestStrictPolicy(t *testing.T) {
	l := NewWithPolicy[string](RejectOutOfRange)

	// Position zero on an empty list is in range.
	if err := l.InsertAt(0, "a"); err != nil {
		t.Fatalf("InsertAt(0) on empty strict list failed: %v", err)
	}

	// Exact end is a valid append.
	if err := l.InsertAt(1, "b"); err != nil {
		t.Fatalf("InsertAt(1) append failed: %v", err)
	}

	// One past the end is not.
	if err := l.InsertAt(3, "z"); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("InsertAt(3) error = %v, want ErrPositionOutOfRange", err)
	}

	if got := l.Slice(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("list after rejected insert = %v, want [a b]", got)
	}
}

func TestStrictPolicyEmptyList(t *testing.T) {
	l := NewWithPolicy[string](RejectOutOfRange)
	if err := l.InsertAt(1, "x"); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("InsertAt(1) on empty strict list error = %v, want ErrPositionOutOfRange", err)
	}
}

func TestRepeatedFrontInsert(t *testing.T) {
	l := New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		if err := l.InsertAt(0, v); err != nil {
			t.Fatalf("InsertAt(0, %q) failed: %v", v, err)
		}
	}

	// Stack-like growth at the front: last inserted comes first.
	want := []string{"d", "c", "b", "a"}
	if got := l.Slice(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLenGrowsByOnePerInsert(t *testing.T) {
	l := New[int]()
	positions := []int{0, 5, 1, 0, 3, 99, 2}
	for i, pos := range positions {
		before := l.Len()
		if err := l.InsertAt(pos, i); err != nil {
			t.Fatalf("InsertAt(%d, %d) failed: %v", pos, i, err)
		}
		if got := l.Len(); got != before+1 {
			t.Fatalf("after insert %d: Len() = %d, want %d", i, got, before+1)
		}
	}
}

func TestFirst(t *testing.T) {
	l := New[string]()

	if _, err := l.First(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("First() on empty list error = %v, want ErrEmptyList", err)
	}

	if err := l.InsertAt(0, "a"); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	got, err := l.First()
	if err != nil {
		t.Fatalf("First() failed: %v", err)
	}
	if got != "a" {
		t.Errorf("First() = %q, want %q", got, "a")
	}
}

func TestValuesIsRestartable(t *testing.T) {
	l := buildList(t, "a", "b", "c")

	first := slices.Collect(l.Values())
	second := slices.Collect(l.Values())

	if !slices.Equal(first, second) {
		t.Errorf("repeated traversals differ: %v vs %v", first, second)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(first, want) {
		t.Errorf("Values() = %v, want %v", first, want)
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	l := buildList(t, "a", "b", "c", "d")

	var got []string
	for v := range l.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// A broken-off traversal must not affect a fresh one.
	if got := l.Slice(); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("list changed after early break: %v", got)
	}
}

func TestValuesDoesNotMutate(t *testing.T) {
	l := buildList(t, "a", "b")
	_ = slices.Collect(l.Values())
	if got := l.Len(); got != 2 {
		t.Errorf("Len() after traversal = %d, want 2", got)
	}
}

func TestZeroValueListIsUsable(t *testing.T) {
	var l List[int]
	if got := l.Len(); got != 0 {
		t.Errorf("zero value Len() = %d, want 0", got)
	}
	if err := l.InsertAt(10, 42); err != nil {
		t.Fatalf("InsertAt on zero value failed: %v", err)
	}
	if got := l.Slice(); !slices.Equal(got, []int{42}) {
		t.Errorf("got %v, want [42]", got)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"clamp", ClampToEnd, false},
		{"strict", RejectOutOfRange, false},
		{"CLAMP", ClampToEnd, false},
		{"Strict", RejectOutOfRange, false},
		{"", ClampToEnd, true},
		{"reject", ClampToEnd, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicyString(t *testing.T) {
	if got := ClampToEnd.String(); got != "clamp" {
		t.Errorf("ClampToEnd.String() = %q, want clamp", got)
	}
	if got := RejectOutOfRange.String(); got != "strict" {
		t.Errorf("RejectOutOfRange.String() = %q, want strict", got)
	}
	if got := Policy(7).String(); got != "unknown(7)" {
		t.Errorf("Policy(7).String() = %q, want unknown(7)", got)
	}
}
