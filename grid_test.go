package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
}

func (m *mockRenderer) Render(dl *datagrid.DrawList) error {
	m.renderCalls++
	dl.Finalize()
	m.lastCmds = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

// stickyRenderer is a mockRenderer that reports sticky column support.
type stickyRenderer struct {
	mockRenderer
}

func (s *stickyRenderer) Capabilities() datagrid.Capabilities {
	return datagrid.Capabilities{StickyColumns: true}
}

func exampleColumns() []datagrid.Column {
	return []datagrid.Column{
		{Key: datagrid.SelectorColumnKey, Idx: 0, Width: 32, MinWidth: 32, Locked: true},
		{Key: "name", Name: "Name", Idx: 1, Width: 160, Sortable: true, Filterable: true},
		{Key: "email", Name: "Email", Idx: 2, Width: 200, Filterable: true},
	}
}

func TestGridBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	grid := datagrid.New(renderer)

	input := datagrid.NewInputState()
	displaySize := datagrid.Vec2{X: 800, Y: 600}

	header := datagrid.NewHeaderContainer(grid.Capabilities())
	header.SetProps(datagrid.HeaderProps{
		Metrics: datagrid.ComputeMetrics(exampleColumns(), nil, 50),
		Rows: []datagrid.HeaderRowDescriptor{
			{Kind: datagrid.HeaderRowLabels, Height: 28},
			{Kind: datagrid.HeaderRowFilters, Height: 26, Filterable: true},
		},
	})

	ctx := grid.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	header.Render(ctx)

	if err := grid.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastCmds == 0 {
		t.Error("expected the header to emit draw commands")
	}
}

func TestCapabilityProbe(t *testing.T) {
	// Plain renderer: conservative default, no sticky columns
	grid := datagrid.New(&mockRenderer{})
	if grid.Capabilities().StickyColumns {
		t.Error("expected no sticky support without a prober")
	}

	// Renderer reporting sticky support through the optional interface
	grid = datagrid.New(&stickyRenderer{})
	if !grid.Capabilities().StickyColumns {
		t.Error("expected sticky support from the prober")
	}

	// Explicit override wins
	grid = datagrid.New(&stickyRenderer{}, datagrid.WithCapabilities(datagrid.Capabilities{}))
	if grid.Capabilities().StickyColumns {
		t.Error("expected WithCapabilities to override the probe")
	}
}

func TestFilterTyping(t *testing.T) {
	renderer := &mockRenderer{}
	grid := datagrid.New(renderer)

	metrics := datagrid.ComputeMetrics(exampleColumns(), nil, 50)

	var gotColumn, gotValue string
	header := datagrid.NewHeaderContainer(grid.Capabilities())
	header.SetProps(datagrid.HeaderProps{
		Metrics: metrics,
		Rows: []datagrid.HeaderRowDescriptor{
			{Kind: datagrid.HeaderRowLabels, Height: 28},
			{Kind: datagrid.HeaderRowFilters, Height: 26, Filterable: true,
				OnFilterChange: func(columnKey, value string) {
					gotColumn = columnKey
					gotValue = value
				}},
		},
	})

	input := datagrid.NewInputState()

	// Frame 1: click inside the name column's filter cell (filter row
	// spans y 28..54, name column spans x 32..192).
	input.SetMousePos(100, 40)
	input.SetMouseButton(datagrid.MouseButtonLeft, true)

	ctx := grid.Begin(input, datagrid.Vec2{X: 800, Y: 600}, 0.016)
	header.Render(ctx)
	_ = grid.End()

	// Frame 2: release and type
	input.Reset()
	input.SetMouseButton(datagrid.MouseButtonLeft, false)
	input.AddInputChar('a')
	input.AddInputChar('b')

	ctx = grid.Begin(input, datagrid.Vec2{X: 800, Y: 600}, 0.016)
	header.Render(ctx)
	_ = grid.End()

	if gotColumn != "name" {
		t.Fatalf("expected filter change for column name, got %q", gotColumn)
	}
	if gotValue != "ab" {
		t.Errorf("expected filter value ab, got %q", gotValue)
	}
	if !ctx.WantCaptureKeyboard {
		t.Error("expected keyboard capture while editing a filter")
	}
}

func TestSortClickTogglesDirection(t *testing.T) {
	renderer := &mockRenderer{}
	grid := datagrid.New(renderer)

	var gotKey string
	gotDir := datagrid.SortNone
	header := datagrid.NewHeaderContainer(grid.Capabilities())
	header.SetProps(datagrid.HeaderProps{
		Metrics: datagrid.ComputeMetrics(exampleColumns(), nil, 50),
		Rows: []datagrid.HeaderRowDescriptor{
			{Kind: datagrid.HeaderRowLabels, Height: 28},
		},
		OnSort: func(key string, dir datagrid.SortDirection) {
			gotKey = key
			gotDir = dir
		},
	})

	// Click the middle of the sortable name column's label cell
	input := datagrid.NewInputState()
	input.SetMousePos(100, 14)
	input.SetMouseButton(datagrid.MouseButtonLeft, true)

	ctx := grid.Begin(input, datagrid.Vec2{X: 800, Y: 600}, 0.016)
	header.Render(ctx)
	_ = grid.End()

	if gotKey != "name" {
		t.Fatalf("expected sort on name, got %q", gotKey)
	}
	if gotDir != datagrid.SortAscending {
		t.Errorf("expected first click to sort ascending, got %v", gotDir)
	}
}

func TestSelectAllClick(t *testing.T) {
	renderer := &mockRenderer{}
	grid := datagrid.New(renderer)

	rows := []datagrid.Row{
		{"id": 10},
		{"id": 20},
	}

	var got datagrid.KeySet
	header := datagrid.NewHeaderContainer(grid.Capabilities())
	header.SetProps(datagrid.HeaderProps{
		Metrics: datagrid.ComputeMetrics(exampleColumns(), nil, 50),
		Rows: []datagrid.HeaderRowDescriptor{
			{Kind: datagrid.HeaderRowLabels, Height: 28},
		},
		RowCount:             len(rows),
		RowGetter:            func(i int) datagrid.Row { return rows[i] },
		RowKey:               "id",
		OnSelectedRowsChange: func(keys datagrid.KeySet) { got = keys },
	})

	// Click the selector column cell (x 0..32)
	input := datagrid.NewInputState()
	input.SetMousePos(16, 14)
	input.SetMouseButton(datagrid.MouseButtonLeft, true)

	ctx := grid.Begin(input, datagrid.Vec2{X: 800, Y: 600}, 0.016)
	header.Render(ctx)
	_ = grid.End()

	if got == nil {
		t.Fatal("expected a selection change")
	}
	if got.Len() != 2 || !got.Contains(10) || !got.Contains(20) {
		t.Errorf("expected keys {10, 20}, got %d keys", got.Len())
	}
}
