package expand

import (
	"errors"
	"testing"
)

func TestNewTableValid(t *testing.T) {
	table, err := NewTable(
		map[string]string{"A": "A1", "B": "B1", "_helper": "h"},
		map[string]string{"X": "A2 B3..5", "Y": "  A    B  "},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	if text, ok := table.Sequence("A"); !ok || text != "A1" {
		t.Errorf("Sequence(A) = %q, %v", text, ok)
	}
	if _, ok := table.Sequence("X"); ok {
		t.Error("combination X reported as a sequence")
	}

	items, ok := table.Combination("Y")
	if !ok {
		t.Fatal("Combination(Y) not found")
	}
	want := []Reference{
		{Name: "A", Repeat: Once()},
		{Name: "B", Repeat: Once()},
	}
	if len(items) != len(want) {
		t.Fatalf("Combination(Y) = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Combination(Y)[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestNewTableRejectsDuplicateName(t *testing.T) {
	_, err := NewTable(
		map[string]string{"A": "A1"},
		map[string]string{"A": "B2"},
	)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("error = %v, want ErrDuplicateName", err)
	}
}

func TestNewTableRejectsBadNames(t *testing.T) {
	cases := []struct {
		sequences    map[string]string
		combinations map[string]string
		kind         error
	}{
		{map[string]string{"": "x"}, nil, ErrEmptyName},
		{map[string]string{"A4": "x"}, nil, ErrInvalidName},
		{map[string]string{"B A": "x"}, nil, ErrInvalidName},
		{nil, map[string]string{"2..6": "A"}, ErrInvalidName},
	}
	for _, tc := range cases {
		_, err := NewTable(tc.sequences, tc.combinations)
		if !errors.Is(err, tc.kind) {
			t.Errorf("NewTable(%v, %v) error = %v, want %v", tc.sequences, tc.combinations, err, tc.kind)
		}
	}
}

func TestNewTableRejectsMalformedItems(t *testing.T) {
	cases := []struct {
		def  string
		kind error
	}{
		{"A3 B3..~5", ErrMalformedRepetition},
		{"A5..", ErrMalformedRepetition},
		{"A5..2", ErrInvalidRange},
		{"3", ErrEmptyName},
	}
	for _, tc := range cases {
		_, err := NewTable(
			map[string]string{"A": "a", "B": "b"},
			map[string]string{"X": tc.def},
		)
		if !errors.Is(err, tc.kind) {
			t.Errorf("combination %q: error = %v, want %v", tc.def, err, tc.kind)
		}
	}
}

func TestTableNames(t *testing.T) {
	table, err := NewTable(
		map[string]string{"B": "b", "A": "a"},
		map[string]string{"X": "A B"},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	names := table.Names()
	want := []string{"A", "B", "X"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
