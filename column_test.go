package datagrid

import "testing"

func testColumns() []Column {
	return []Column{
		{Key: "a", Name: "A", Idx: 0, Width: 100, MinWidth: 50},
		{Key: "b", Name: "B", Idx: 1, Width: 150, MinWidth: 50},
	}
}

func TestComputeMetrics_PrefixSums(t *testing.T) {
	m := ComputeMetrics(testColumns(), nil, 50)

	if m.Width != 250 {
		t.Errorf("Expected total width 250, got %f", m.Width)
	}
	if m.Columns[0].Left != 0 {
		t.Errorf("Expected first column left 0, got %f", m.Columns[0].Left)
	}
	if m.Columns[1].Left != 100 {
		t.Errorf("Expected second column left 100, got %f", m.Columns[1].Left)
	}
}

func TestComputeMetrics_OverrideTakesPrecedence(t *testing.T) {
	m := ComputeMetrics(testColumns(), map[string]float32{"a": 120}, 50)

	if m.Columns[0].Width != 120 {
		t.Errorf("Expected overridden width 120, got %f", m.Columns[0].Width)
	}
	if m.Columns[1].Left != 120 {
		t.Errorf("Expected second column left 120, got %f", m.Columns[1].Left)
	}
	if m.Width != 270 {
		t.Errorf("Expected total width 270, got %f", m.Width)
	}
}

func TestComputeMetrics_ClampsToMinimum(t *testing.T) {
	m := ComputeMetrics(testColumns(), map[string]float32{"a": 30}, 50)

	if m.Columns[0].Width != 50 {
		t.Errorf("Expected override clamped to minimum 50, got %f", m.Columns[0].Width)
	}

	// Per-column minimum above the global one wins
	cols := []Column{{Key: "c", Idx: 0, Width: 10, MinWidth: 80}}
	m = ComputeMetrics(cols, nil, 50)
	if m.Columns[0].Width != 80 {
		t.Errorf("Expected per-column minimum 80, got %f", m.Columns[0].Width)
	}
}

func TestComputeMetrics_DoesNotMutateInputs(t *testing.T) {
	cols := testColumns()
	overrides := map[string]float32{"a": 200}

	_ = ComputeMetrics(cols, overrides, 50)

	if cols[0].Width != 100 || cols[0].Left != 0 {
		t.Errorf("Input columns mutated: width=%f left=%f", cols[0].Width, cols[0].Left)
	}
	if len(overrides) != 1 || overrides["a"] != 200 {
		t.Errorf("Input overrides mutated: %v", overrides)
	}
}

func TestMetrics_ColumnByKey(t *testing.T) {
	m := ComputeMetrics(testColumns(), nil, 50)

	if col := m.ColumnByKey("b"); col == nil || col.Idx != 1 {
		t.Errorf("Expected to find column b at index 1, got %v", col)
	}
	if col := m.ColumnByKey("missing"); col != nil {
		t.Errorf("Expected nil for unknown key, got %v", col)
	}
}
