package datagrid

// SelectorColumnKey is the reserved key for the row-selector column.
// A column with this key renders the select-all checkbox instead of a
// label, stays pinned at the left edge, and is neither sortable nor
// resizable.
const SelectorColumnKey = "select-row"

// Column describes one grid column.
// Column definitions are owned by the grid owner; the header treats
// them as immutable snapshots per frame.
type Column struct {
	Key      string  // Identity key, stable across reorders
	Name     string  // Display label
	Idx      int     // Display index
	Width    float32 // Current width in pixels
	MinWidth float32 // Per-column minimum width (0 = use global minimum)

	Sortable   bool
	Filterable bool
	Locked     bool // Pinned left, excluded from horizontal scroll

	// Left is the computed offset from the row origin.
	// Set by ComputeMetrics, not by the owner.
	Left float32
}

// Metrics is the finalized column layout: the ordered columns with
// computed left offsets, the total rendered width, and the inputs
// the layout was derived from.
type Metrics struct {
	Columns        []Column
	Width          float32 // Sum of all column widths
	MinColumnWidth float32 // Global minimum column width

	// WidthOverrides maps column key to an explicit width that takes
	// precedence over the column's own Width.
	WidthOverrides map[string]float32
}

// ComputeMetrics derives a finalized layout from column definitions
// and width overrides. It is a pure function: inputs are copied, never
// mutated, and the same inputs always produce the same layout.
//
// Width resolution per column: the override if present, else the
// column's own width, clamped to max(column minimum, global minimum).
// Left offsets are prefix sums in display order.
func ComputeMetrics(columns []Column, overrides map[string]float32, minColumnWidth float32) Metrics {
	m := Metrics{
		Columns:        make([]Column, len(columns)),
		MinColumnWidth: minColumnWidth,
		WidthOverrides: make(map[string]float32, len(overrides)),
	}
	for k, v := range overrides {
		m.WidthOverrides[k] = v
	}

	left := float32(0)
	for i, col := range columns {
		width := col.Width
		if ov, ok := overrides[col.Key]; ok {
			width = ov
		}
		width = maxf(width, maxf(col.MinWidth, minColumnWidth))

		col.Width = width
		col.Left = left
		m.Columns[i] = col
		left += width
	}
	m.Width = left

	return m
}

// ColumnByKey returns the column with the given key, or nil.
func (m *Metrics) ColumnByKey(key string) *Column {
	for i := range m.Columns {
		if m.Columns[i].Key == key {
			return &m.Columns[i]
		}
	}
	return nil
}

// effectiveMin returns the minimum width that applies to a column.
func (m *Metrics) effectiveMin(col Column) float32 {
	return maxf(col.MinWidth, m.MinColumnWidth)
}
