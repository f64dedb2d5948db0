package datagrid

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirection is the sort order of a column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// Next returns the direction after one more click on the header:
// none -> ascending -> descending -> none.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// String returns a human-readable direction name.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// indicator returns the header cell glyph for the direction.
func (d SortDirection) indicator() string {
	switch d {
	case SortAscending:
		return "^"
	case SortDescending:
		return "v"
	default:
		return ""
	}
}

// RowComparator compares row cell values for sorting.
// Strings are compared with a locale-aware collator so that sorting
// matches what users expect in their language; numbers are compared
// numerically even when mixed with strings.
type RowComparator struct {
	collator *collate.Collator
}

// NewRowComparator creates a comparator for the given locale tag,
// e.g. "en-US" or "de". An empty or invalid tag falls back to
// language-neutral collation.
func NewRowComparator(locale string) *RowComparator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &RowComparator{
		collator: collate.New(tag, collate.IgnoreCase),
	}
}

// Compare returns -1, 0, or 1 ordering a before b in ascending order.
// Nil sorts before everything.
func (c *RowComparator) Compare(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return c.collator.CompareString(valueString(a), valueString(b))
}

// CompareDirected applies a sort direction to Compare.
// SortNone compares everything equal, preserving input order.
func (c *RowComparator) CompareDirected(a, b any, dir SortDirection) int {
	switch dir {
	case SortAscending:
		return c.Compare(a, b)
	case SortDescending:
		return -c.Compare(a, b)
	default:
		return 0
	}
}

// toFloat extracts a numeric value if the input is a number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// valueString renders a cell value for collation.
func valueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
