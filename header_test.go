package datagrid

import "testing"

func newTestHeader(caps Capabilities) *HeaderContainer {
	h := NewHeaderContainer(caps)
	h.SetProps(HeaderProps{
		Metrics: ComputeMetrics(testColumns(), nil, 50),
		Rows: []HeaderRowDescriptor{
			{Kind: HeaderRowLabels, Height: 28},
		},
	})
	return h
}

func TestResize_CommitOncePerGesture(t *testing.T) {
	h := newTestHeader(Capabilities{})

	var commits []struct {
		idx   int
		width float32
	}
	props := h.Props()
	props.OnColumnResize = func(idx int, width float32) {
		commits = append(commits, struct {
			idx   int
			width float32
		}{idx, width})
	}
	h.SetProps(props)

	colA := props.Metrics.Columns[0]

	// Worked example: start at 30 clamps to the minimum 50, move to 80,
	// release commits (A.Idx, 80) exactly once.
	h.ResizeStart(colA, 30)
	if !h.Resizing() {
		t.Fatal("Expected resize state after start")
	}
	if h.resize.width != 50 {
		t.Errorf("Expected start width clamped to 50, got %f", h.resize.width)
	}

	h.ResizeMove(colA, 80)
	if h.resize.width != 80 {
		t.Errorf("Expected candidate width 80, got %f", h.resize.width)
	}

	h.ResizeEnd()

	if len(commits) != 1 {
		t.Fatalf("Expected exactly one commit, got %d", len(commits))
	}
	if commits[0].idx != colA.Idx || commits[0].width != 80 {
		t.Errorf("Expected commit (%d, 80), got (%d, %f)", colA.Idx, commits[0].idx, commits[0].width)
	}
	if h.Resizing() {
		t.Error("Expected no resize state after commit")
	}
}

func TestResize_EndWithoutActiveStateIsNoOp(t *testing.T) {
	h := newTestHeader(Capabilities{})

	called := false
	props := h.Props()
	props.OnColumnResize = func(int, float32) { called = true }
	h.SetProps(props)

	h.ResizeEnd()

	if called {
		t.Error("Expected no commit without an active resize")
	}
}

func TestResize_MoveReclamps(t *testing.T) {
	h := newTestHeader(Capabilities{})
	colA := h.Props().Metrics.Columns[0]

	h.ResizeStart(colA, 100)
	h.ResizeMove(colA, 10)

	if h.resize.width != 50 {
		t.Errorf("Expected move re-clamped to 50, got %f", h.resize.width)
	}
}

func TestResize_NewGestureReplacesActive(t *testing.T) {
	h := newTestHeader(Capabilities{})

	var commits []int
	props := h.Props()
	props.OnColumnResize = func(idx int, _ float32) { commits = append(commits, idx) }
	h.SetProps(props)

	colA := props.Metrics.Columns[0]
	colB := props.Metrics.Columns[1]

	h.ResizeStart(colA, 90)
	h.ResizeStart(colB, 120) // Replaces the first gesture, no commit
	h.ResizeEnd()

	if len(commits) != 1 || commits[0] != colB.Idx {
		t.Errorf("Expected single commit for column B, got %v", commits)
	}
}

func TestResize_CommittedMetricsNeverMutated(t *testing.T) {
	h := newTestHeader(Capabilities{})
	committed := h.Props().Metrics
	colA := committed.Columns[0]

	h.ResizeStart(colA, 200)
	eff := h.effectiveMetrics()

	if eff.Columns[0].Width != 200 {
		t.Errorf("Expected effective width 200 during drag, got %f", eff.Columns[0].Width)
	}
	if committed.Columns[0].Width != 100 {
		t.Errorf("Committed width mutated during drag: %f", committed.Columns[0].Width)
	}
	if len(committed.WidthOverrides) != 0 {
		t.Errorf("Committed overrides mutated during drag: %v", committed.WidthOverrides)
	}
	if h.Props().Metrics.Columns[0].Width != 100 {
		t.Errorf("Props metrics mutated during drag")
	}
}

func TestEffectiveMetrics_IdentityWhenIdle(t *testing.T) {
	h := newTestHeader(Capabilities{})

	eff := h.effectiveMetrics()
	committed := h.Props().Metrics

	if eff.Width != committed.Width {
		t.Errorf("Expected pass-through metrics when idle, got width %f", eff.Width)
	}
	if eff.Columns[0].Width != committed.Columns[0].Width {
		t.Errorf("Expected identical column widths when idle")
	}
}

func TestSelectAll_BuildsFullSetAndEmptySet(t *testing.T) {
	h := newTestHeader(Capabilities{})

	rows := []Row{
		{"id": 1, "name": "Avery"},
		{"id": 2, "name": "Blake"},
		{"id": 3, "name": "Casey"},
	}

	var got KeySet
	props := h.Props()
	props.RowCount = len(rows)
	props.RowGetter = func(i int) Row { return rows[i] }
	props.RowKey = "id"
	props.OnSelectedRowsChange = func(keys KeySet) { got = keys }

	// Toggle on: every row key is collected
	props.AllRowsSelected = false
	h.SetProps(props)
	h.toggleSelectAll()

	if got.Len() != 3 {
		t.Fatalf("Expected 3 keys, got %d", got.Len())
	}
	for _, id := range []int{1, 2, 3} {
		if !got.Contains(id) {
			t.Errorf("Expected key %d in set", id)
		}
	}

	// Toggle off: empty set
	props.AllRowsSelected = true
	h.SetProps(props)
	h.toggleSelectAll()

	if got.Len() != 0 {
		t.Errorf("Expected empty set, got %d keys", got.Len())
	}
}

func TestSelectAll_NoHandlerIsNoOp(t *testing.T) {
	h := newTestHeader(Capabilities{})
	h.toggleSelectAll() // Must not panic
}

func testRenderFrame(h *HeaderContainer, input *InputState) {
	ctx := NewContext()
	ctx.DrawList = AcquireDrawList()
	defer func() {
		ReleaseDrawList(ctx.DrawList)
		ctx.DrawList = nil
	}()
	ctx.Input = input
	ctx.FontTextureID = 1
	ctx.Reset(Vec2{X: 800, Y: 600}, 0.016)
	h.Render(ctx)
}

func TestSetScrollLeft_FanOutWithoutSticky(t *testing.T) {
	h := newTestHeader(Capabilities{StickyColumns: false})
	props := h.Props()
	props.Rows = append(props.Rows, HeaderRowDescriptor{Kind: HeaderRowFilters, Height: 26, Filterable: true})
	h.SetProps(props)

	// Rows must have rendered once to be registered for fan-out
	testRenderFrame(h, NewInputState())

	h.SetScrollLeft(42)

	if h.ScrollLeft() != 42 {
		t.Errorf("Expected container offset 42, got %f", h.ScrollLeft())
	}
	if h.labelRow.ScrollLeft() != 42 {
		t.Errorf("Expected label row offset 42, got %f", h.labelRow.ScrollLeft())
	}
	if h.filterRow.ScrollLeft() != 42 {
		t.Errorf("Expected filter row offset 42, got %f", h.filterRow.ScrollLeft())
	}
}

func TestSetScrollLeft_StickySkipsRows(t *testing.T) {
	h := newTestHeader(Capabilities{StickyColumns: true})
	testRenderFrame(h, NewInputState())

	h.SetScrollLeft(42)

	if h.ScrollLeft() != 42 {
		t.Errorf("Expected container offset 42, got %f", h.ScrollLeft())
	}
	if h.labelRow.ScrollLeft() != 0 {
		t.Errorf("Expected no row forwarding with sticky support, got %f", h.labelRow.ScrollLeft())
	}
	if len(h.scrollRows) != 0 {
		t.Errorf("Expected no retained scroll rows with sticky support, got %d", len(h.scrollRows))
	}
}

func TestHeaderClick_ResetsActiveCellOncePerClick(t *testing.T) {
	h := newTestHeader(Capabilities{})

	var clicks []CellPosition
	props := h.Props()
	props.OnCellClick = func(pos CellPosition) { clicks = append(clicks, pos) }
	h.SetProps(props)

	input := NewInputState()
	input.SetMousePos(10, 10) // Inside the header region
	input.SetMouseButton(MouseButtonLeft, true)
	testRenderFrame(h, input)

	if len(clicks) != 1 {
		t.Fatalf("Expected one cell-click reset, got %d", len(clicks))
	}
	if clicks[0] != NoCell {
		t.Errorf("Expected NoCell sentinel, got %v", clicks[0])
	}

	// Holding the button over later frames is not a new click
	input.Reset()
	input.SetMousePos(10, 10)
	testRenderFrame(h, input)

	if len(clicks) != 1 {
		t.Errorf("Expected no further resets while held, got %d", len(clicks))
	}
}

func TestRender_NoRowsIsNoOp(t *testing.T) {
	h := NewHeaderContainer(Capabilities{})
	h.SetProps(HeaderProps{Metrics: ComputeMetrics(testColumns(), nil, 50)})
	testRenderFrame(h, NewInputState()) // Must not panic
}

func TestHeight_SumsRowDescriptors(t *testing.T) {
	h := newTestHeader(Capabilities{})
	props := h.Props()
	props.Rows = []HeaderRowDescriptor{
		{Kind: HeaderRowLabels, Height: 28},
		{Kind: HeaderRowFilters, Height: 26},
	}
	h.SetProps(props)

	if h.Height() != 54 {
		t.Errorf("Expected header height 54, got %f", h.Height())
	}
}
