package datagrid

import "testing"

func TestSortDirection_NextCycles(t *testing.T) {
	if SortNone.Next() != SortAscending {
		t.Error("Expected none -> ascending")
	}
	if SortAscending.Next() != SortDescending {
		t.Error("Expected ascending -> descending")
	}
	if SortDescending.Next() != SortNone {
		t.Error("Expected descending -> none")
	}
}

func TestSortDirection_NextForOtherColumnStartsAscending(t *testing.T) {
	// Clicking a different column always starts a fresh ascending sort
	if got := SortDescending.nextFor("name", "city"); got != SortAscending {
		t.Errorf("Expected ascending for new column, got %v", got)
	}
	// Clicking the active column advances the cycle
	if got := SortAscending.nextFor("city", "city"); got != SortDescending {
		t.Errorf("Expected descending for active column, got %v", got)
	}
}

func TestRowComparator_Strings(t *testing.T) {
	c := NewRowComparator("en-US")

	if c.Compare("apple", "banana") >= 0 {
		t.Error("Expected apple < banana")
	}
	// Case-insensitive collation
	if c.Compare("apple", "Banana") >= 0 {
		t.Error("Expected apple < Banana ignoring case")
	}
	if c.Compare("same", "same") != 0 {
		t.Error("Expected equal strings to compare equal")
	}
}

func TestRowComparator_Numbers(t *testing.T) {
	c := NewRowComparator("en-US")

	// Numeric, not lexicographic: 2 < 10
	if c.Compare(2, 10) >= 0 {
		t.Error("Expected 2 < 10")
	}
	if c.Compare(float32(1.5), 1.5) != 0 {
		t.Error("Expected equal numbers across types")
	}
}

func TestRowComparator_NilSortsFirst(t *testing.T) {
	c := NewRowComparator("en-US")

	if c.Compare(nil, "x") != -1 {
		t.Error("Expected nil before value")
	}
	if c.Compare("x", nil) != 1 {
		t.Error("Expected value after nil")
	}
	if c.Compare(nil, nil) != 0 {
		t.Error("Expected nil equal to nil")
	}
}

func TestRowComparator_Directed(t *testing.T) {
	c := NewRowComparator("en-US")

	if c.CompareDirected("a", "b", SortAscending) >= 0 {
		t.Error("Expected a < b ascending")
	}
	if c.CompareDirected("a", "b", SortDescending) <= 0 {
		t.Error("Expected a > b descending")
	}
	if c.CompareDirected("a", "b", SortNone) != 0 {
		t.Error("Expected no ordering without a direction")
	}
}

func TestRowComparator_InvalidLocaleFallsBack(t *testing.T) {
	c := NewRowComparator("not a locale")

	if c.Compare("a", "b") >= 0 {
		t.Error("Expected fallback collation to still order strings")
	}
}
