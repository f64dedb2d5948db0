package datagrid

// CellPosition identifies a grid cell by row and column index.
type CellPosition struct {
	Row    int
	Column int
}

// NoCell is the sentinel "no cell selected" position.
// Clicking the header resets the active cell to it.
var NoCell = CellPosition{Row: -1, Column: -1}

// HeaderProps is the owner-supplied contract for one frame of header
// rendering. All fields are treated as immutable snapshots; the header
// never mutates them.
type HeaderProps struct {
	// Metrics is the committed column layout.
	Metrics Metrics

	// Rows describes the header rows to render. The first descriptor
	// (label row) is required; a second adds the filter row.
	Rows []HeaderRowDescriptor

	// Selection
	AllRowsSelected bool
	RowCount        int
	RowGetter       RowGetter
	RowKey          string // Field name holding each row's key value

	// Sort
	SortColumn    string
	SortDirection SortDirection

	// FilterValues enumerates the distinct values of a column, for
	// filter hints. Optional.
	FilterValues func(columnKey string) []string

	// Callbacks. All optional; a nil callback makes the corresponding
	// gesture a no-op.
	OnColumnResize       func(columnIdx int, width float32) // Once per completed drag
	OnSort               func(columnKey string, dir SortDirection)
	OnSelectedRowsChange func(keys KeySet)
	OnCellClick          func(pos CellPosition)
	OnHeaderDrop         func(sourceKey, targetKey string)
}

// headerResize is the transient state of an in-progress column resize:
// which column and the current candidate width. Absent when idle.
type headerResize struct {
	column Column
	width  float32
}

// HeaderContainer owns the header region: it renders the label row and
// optional filter row, runs the resize drag locally until commit, and
// synchronizes horizontal scrolling with the grid body.
type HeaderContainer struct {
	caps  Capabilities
	props HeaderProps

	// resize is nil while idle
	resize *headerResize

	scrollLeft float32

	labelRow  *HeaderRow
	filterRow *HeaderRow

	// scrollRows holds the rows that receive forwarded scroll offsets.
	// Only populated when the renderer lacks sticky column support.
	scrollRows []*HeaderRow
}

// NewHeaderContainer creates a header container for the given
// capabilities.
func NewHeaderContainer(caps Capabilities) *HeaderContainer {
	h := &HeaderContainer{caps: caps}
	h.labelRow = &HeaderRow{kind: HeaderRowLabels}
	h.filterRow = &HeaderRow{kind: HeaderRowFilters}
	h.bindRows()
	return h
}

// bindRows wires row gestures to the container's handlers.
func (h *HeaderContainer) bindRows() {
	h.labelRow.onResizeStart = func(col Column, width float32) { h.ResizeStart(col, width) }
	h.labelRow.onResizeMove = func(col Column, width float32) { h.ResizeMove(col, width) }
	h.labelRow.onResizeEnd = func() { h.ResizeEnd() }
	h.labelRow.onSort = func(key string, dir SortDirection) {
		if h.props.OnSort != nil {
			h.props.OnSort(key, dir)
		}
	}
	h.labelRow.onToggleSelectAll = func() { h.toggleSelectAll() }
	h.labelRow.onHeaderDrop = func(source, target string) {
		if h.props.OnHeaderDrop != nil {
			h.props.OnHeaderDrop(source, target)
		}
	}
}

// SetProps replaces the owner-supplied props for subsequent frames.
func (h *HeaderContainer) SetProps(props HeaderProps) {
	h.props = props
}

// Props returns the current props.
func (h *HeaderContainer) Props() HeaderProps {
	return h.props
}

// Resizing reports whether a resize drag is in progress.
func (h *HeaderContainer) Resizing() bool {
	return h.resize != nil
}

// ResizeStart begins a resize gesture on a column. The candidate width
// is clamped to the column's effective minimum. Starting a new gesture
// while one is active replaces the old state; nothing is committed.
func (h *HeaderContainer) ResizeStart(col Column, width float32) {
	minWidth := h.props.Metrics.effectiveMin(col)
	h.resize = &headerResize{
		column: col,
		width:  maxf(width, minWidth),
	}
}

// ResizeMove updates the candidate width of the active gesture,
// re-clamping against the minimum. No-op when idle.
func (h *HeaderContainer) ResizeMove(col Column, width float32) {
	if h.resize == nil {
		return
	}
	if h.resize.column.Key != col.Key {
		// A different column means a new gesture replaced the old one
		h.ResizeStart(col, width)
		return
	}
	minWidth := h.props.Metrics.effectiveMin(h.resize.column)
	h.resize.width = maxf(width, minWidth)
}

// ResizeEnd completes the gesture: the commit callback fires exactly
// once with the column's display index and the final candidate width,
// then the local state is discarded. With no active gesture this is a
// no-op. There is no cancel path; releasing always commits.
func (h *HeaderContainer) ResizeEnd() {
	if h.resize == nil {
		return
	}
	resize := h.resize
	h.resize = nil
	if h.props.OnColumnResize != nil {
		// Clamp against the minimum as of drag-end; the minimum may
		// have changed since the last move.
		width := maxf(resize.width, h.props.Metrics.effectiveMin(resize.column))
		h.props.OnColumnResize(resize.column.Idx, width)
	}
}

// effectiveMetrics returns the layout to render this frame. Idle means
// the committed metrics pass through untouched. During a resize the
// committed overrides are copied, the active column's candidate width
// is overlaid, and the layout is re-derived from scratch. Re-deriving
// on every frame keeps the drag preview fully local: the owner's
// committed metrics are never mutated and never notified until commit.
func (h *HeaderContainer) effectiveMetrics() Metrics {
	committed := h.props.Metrics
	if h.resize == nil {
		return committed
	}

	overrides := make(map[string]float32, len(committed.WidthOverrides)+1)
	for k, v := range committed.WidthOverrides {
		overrides[k] = v
	}
	overrides[h.resize.column.Key] = maxf(h.resize.width, committed.MinColumnWidth)

	return ComputeMetrics(committed.Columns, overrides, committed.MinColumnWidth)
}

// toggleSelectAll flips the select-all state. Turning on builds the
// full key set by scanning every row; turning off reports an empty
// set. Without a bound handler the toggle is a no-op.
func (h *HeaderContainer) toggleSelectAll() {
	if h.props.OnSelectedRowsChange == nil {
		return
	}
	if h.props.AllRowsSelected {
		h.props.OnSelectedRowsChange(NewKeySet())
		return
	}
	h.props.OnSelectedRowsChange(SelectAllKeys(h.props.RowCount, h.props.RowGetter, h.props.RowKey))
}

// SetScrollLeft sets the container's horizontal scroll offset. With
// sticky column support the renderer keeps pinned cells aligned on its
// own, so only the container offset changes. Without it the offset is
// fanned out to every rendered row so pinned cells stay in place.
func (h *HeaderContainer) SetScrollLeft(offset float32) {
	h.scrollLeft = offset
	if h.caps.StickyColumns {
		return
	}
	for _, row := range h.scrollRows {
		row.SetScrollLeft(offset)
	}
}

// ScrollLeft returns the container's horizontal scroll offset.
func (h *HeaderContainer) ScrollLeft() float32 {
	return h.scrollLeft
}

// Height returns the total header height from the row descriptors.
func (h *HeaderContainer) Height() float32 {
	var total float32
	for _, row := range h.props.Rows {
		total += row.Height
	}
	return total
}

// Render draws the header at the current cursor position and handles
// this frame's gestures. Implements Component.
func (h *HeaderContainer) Render(ctx *Context) {
	if len(h.props.Rows) == 0 {
		return
	}

	origin := ctx.GetCursorPos()
	metrics := h.effectiveMetrics()
	width := metrics.Width + ctx.Style().ScrollbarSize

	headerRect := Rect{X: origin.X, Y: origin.Y, W: width, H: h.Height()}
	if ctx.isHovered(headerRect) {
		ctx.WantCaptureMouse = true
	}

	// Any click on the header resets the grid's active cell. Inner
	// controls still see the same click; they do not suppress this.
	if ctx.isClicked(headerRect) && h.props.OnCellClick != nil {
		h.props.OnCellClick(NoCell)
	}

	// Rebuild the scroll fan-out list each frame from the rows that
	// actually rendered. Skipped entirely with sticky support.
	h.scrollRows = h.scrollRows[:0]

	y := origin.Y
	for i, desc := range h.props.Rows {
		row := h.rowFor(i, desc)
		if row == nil {
			continue
		}

		frame := headerRowFrame{
			origin:        Vec2{X: origin.X, Y: y},
			metrics:       metrics,
			width:         width,
			containerScrl: h.scrollLeft,
			sticky:        h.caps.StickyColumns,
			allSelected:   h.props.AllRowsSelected,
			sortColumn:    h.props.SortColumn,
			sortDirection: h.props.SortDirection,
			filterValues:  h.props.FilterValues,
		}
		row.render(ctx, &frame)

		if !h.caps.StickyColumns {
			h.scrollRows = append(h.scrollRows, row)
		}
		y += desc.Height
	}

	ctx.SetCursorPos(origin.X, y)
}

// rowFor resolves the retained row instance for a descriptor and
// refreshes its per-frame configuration. The label row is always the
// first descriptor; any filter descriptor maps to the filter row.
func (h *HeaderContainer) rowFor(index int, desc HeaderRowDescriptor) *HeaderRow {
	var row *HeaderRow
	switch desc.Kind {
	case HeaderRowLabels:
		if index != 0 {
			return nil
		}
		row = h.labelRow
	case HeaderRowFilters:
		row = h.filterRow
	default:
		return nil
	}

	row.height = desc.Height
	row.filterable = desc.Filterable
	row.onFilterChange = desc.OnFilterChange
	return row
}
