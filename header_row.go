package datagrid

import "strconv"

// HeaderRowKind tags what a header row displays.
type HeaderRowKind int

const (
	HeaderRowLabels  HeaderRowKind = iota // Column labels, sort controls, select-all
	HeaderRowFilters                      // Per-column filter inputs
)

// HeaderRowDescriptor describes one header row supplied by the owner.
// The first descriptor is always the label row; an optional second
// descriptor adds the filter row.
type HeaderRowDescriptor struct {
	Kind       HeaderRowKind
	Height     float32
	Filterable bool

	// OnFilterChange receives the column key and new filter text on
	// every edit. Optional; nil means filter edits are ignored.
	OnFilterChange func(columnKey, value string)
}

// headerDrag tracks an in-progress column reorder gesture.
type headerDrag struct {
	sourceKey string
	active    bool // True once the pointer moved past the drag threshold
	startX    float32
}

// HeaderRow renders one row of header cells for a finalized layout.
// The container retains row instances so it can forward scroll offsets
// when the renderer cannot pin columns natively.
type HeaderRow struct {
	kind       HeaderRowKind
	height     float32
	filterable bool

	// scrollLeft is the offset forwarded by the container in fan-out
	// mode. Locked cells add it back so they stay visually pinned.
	scrollLeft float32

	// Resize gesture tracking (which divider is grabbed)
	resizeKey  string
	resizing   bool
	grabOffset float32 // Distance from pointer to the cell's right edge at grab

	// Column reorder gesture tracking
	drag headerDrag

	// Callbacks bound by the container
	onResizeStart     func(col Column, width float32)
	onResizeMove      func(col Column, width float32)
	onResizeEnd       func()
	onSort            func(columnKey string, dir SortDirection)
	onToggleSelectAll func()
	onFilterChange    func(columnKey, value string)
	onHeaderDrop      func(sourceKey, targetKey string)
}

// SetScrollLeft sets the row's horizontal scroll compensation.
// Called by the container only when the renderer lacks sticky column
// support; with native pinning the compensation is unnecessary.
func (hr *HeaderRow) SetScrollLeft(offset float32) {
	hr.scrollLeft = offset
}

// ScrollLeft returns the last forwarded scroll offset.
func (hr *HeaderRow) ScrollLeft() float32 {
	return hr.scrollLeft
}

// headerRowFrame carries the per-frame inputs a row needs to render.
type headerRowFrame struct {
	origin        Vec2
	metrics       Metrics
	width         float32 // Total row width including scrollbar reservation
	containerScrl float32 // Container's horizontal scroll offset
	sticky        bool    // Renderer pins locked columns natively
	allSelected   bool
	sortColumn    string
	sortDirection SortDirection
	filterValues  func(columnKey string) []string
}

// cellX returns the screen X of a column's left edge for this frame.
// Unlocked cells scroll with the body. Locked cells stay pinned: with
// sticky support the position simply ignores the scroll offset; without
// it the forwarded row offset cancels the container offset out.
func (hr *HeaderRow) cellX(f *headerRowFrame, col Column) float32 {
	if col.Locked {
		if f.sticky {
			return f.origin.X + col.Left
		}
		return f.origin.X + col.Left - f.containerScrl + hr.scrollLeft
	}
	return f.origin.X + col.Left - f.containerScrl
}

// render draws the row and handles its gestures for this frame.
func (hr *HeaderRow) render(ctx *Context, f *headerRowFrame) {
	style := ctx.Style()

	// Row background
	bg := style.HeaderBgColor
	if hr.kind == HeaderRowFilters {
		bg = style.FilterBgColor
	}
	ctx.DrawList.AddRect(f.origin.X, f.origin.Y, f.width, hr.height, bg)

	for i := range f.metrics.Columns {
		col := f.metrics.Columns[i]
		x := hr.cellX(f, col)
		cell := Rect{X: x, Y: f.origin.Y, W: col.Width, H: hr.height}

		switch hr.kind {
		case HeaderRowLabels:
			hr.renderLabelCell(ctx, f, col, cell)
		case HeaderRowFilters:
			hr.renderFilterCell(ctx, f, col, cell)
		}

		// Column divider
		ctx.DrawList.AddLine(x+col.Width, f.origin.Y, x+col.Width, f.origin.Y+hr.height,
			style.ResizeHandleColor, style.BorderSize)
	}

	// Bottom border under the row
	ctx.DrawList.AddLine(f.origin.X, f.origin.Y+hr.height, f.origin.X+f.width, f.origin.Y+hr.height,
		style.BorderColor, style.BorderSize)

	if hr.kind == HeaderRowLabels {
		hr.handleResizeGesture(ctx, f)
		hr.handleDropGesture(ctx, f)
	}
}

// renderLabelCell draws one label cell: select-all checkbox for the
// selector column, otherwise the column name with sort affordances.
func (hr *HeaderRow) renderLabelCell(ctx *Context, f *headerRowFrame, col Column, cell Rect) {
	style := ctx.Style()

	if col.Key == SelectorColumnKey {
		hr.renderSelectAll(ctx, f, cell)
		return
	}

	hovered := ctx.isHovered(cell)
	if hovered && !hr.resizing {
		ctx.DrawList.AddRect(cell.X, cell.Y, cell.W, cell.H, style.HeaderHoveredColor)
	}

	textColor := style.HeaderTextColor
	if textColor == 0 {
		textColor = style.TextColor
	}

	textY := cell.Y + (cell.H-ctx.LineHeight())/2
	ctx.DrawList.PushClipRect(cell.X, cell.Y, cell.X+cell.W, cell.Y+cell.H)
	ctx.AddText(cell.X+style.CellPadding, textY, col.Name, textColor)

	// Sort indicator for the active sort column
	if col.Key == f.sortColumn && f.sortDirection != SortNone {
		glyph := f.sortDirection.indicator()
		gw := ctx.MeasureText(glyph).X
		ctx.AddText(cell.X+cell.W-style.CellPadding-gw, textY, glyph, style.SortIndicatorColor)
	}
	ctx.DrawList.PopClipRect()

	// Click toggles sort, but not when the click lands on the resize
	// handle or a drag gesture is in flight.
	if col.Sortable && hr.onSort != nil && !hr.resizing && !hr.drag.active {
		if ctx.isClicked(cell) && hr.resizeTarget(ctx, f) == nil {
			hr.onSort(col.Key, f.sortDirection.nextFor(col.Key, f.sortColumn))
		}
	}
}

// nextFor returns the direction one more click on columnKey produces.
// Clicking a different column starts a fresh ascending sort.
func (d SortDirection) nextFor(columnKey, activeKey string) SortDirection {
	if columnKey != activeKey {
		return SortAscending
	}
	return d.Next()
}

// renderSelectAll draws the select-all checkbox centered in the cell.
func (hr *HeaderRow) renderSelectAll(ctx *Context, f *headerRowFrame, cell Rect) {
	style := ctx.Style()

	boxSize := ctx.LineHeight()
	box := Rect{
		X: cell.X + (cell.W-boxSize)/2,
		Y: cell.Y + (cell.H-boxSize)/2,
		W: boxSize,
		H: boxSize,
	}

	ctx.DrawList.AddRect(box.X, box.Y, box.W, box.H, style.CheckboxBgColor)
	ctx.DrawList.AddRectOutline(box.X, box.Y, box.W, box.H, style.CheckboxBorderColor, style.BorderSize)

	if f.allSelected {
		// X checkmark
		pad := boxSize * 0.25
		ctx.DrawList.AddLine(box.X+pad, box.Y+pad, box.X+box.W-pad, box.Y+box.H-pad,
			style.CheckboxCheckColor, 2)
		ctx.DrawList.AddLine(box.X+box.W-pad, box.Y+pad, box.X+pad, box.Y+box.H-pad,
			style.CheckboxCheckColor, 2)
	}

	// The whole cell is the click target, not just the box
	if ctx.isClicked(cell) && hr.onToggleSelectAll != nil {
		hr.onToggleSelectAll()
	}
}

// renderFilterCell draws one filter cell.
func (hr *HeaderRow) renderFilterCell(ctx *Context, f *headerRowFrame, col Column, cell Rect) {
	style := ctx.Style()

	if !hr.filterable || !col.Filterable || col.Key == SelectorColumnKey {
		return
	}

	input := Rect{
		X: cell.X + style.ItemSpacing,
		Y: cell.Y + style.ItemSpacing,
		W: cell.W - style.ItemSpacing*2,
		H: cell.H - style.ItemSpacing*2,
	}
	if input.W <= 0 || input.H <= 0 {
		return
	}

	placeholder := "Filter"
	if f.filterValues != nil {
		if values := f.filterValues(col.Key); len(values) > 0 {
			placeholder = "Filter " + strconv.Itoa(len(values)) + " values"
		}
	}

	if ctx.filterInput(col.Key, input, placeholder) && hr.onFilterChange != nil {
		hr.onFilterChange(col.Key, FilterText(col.Key))
	}
}

// resizeTarget returns the column whose right-edge handle is under the
// pointer, or nil. The hit zone is a narrow strip centered on each
// column divider. The selector column is not resizable.
func (hr *HeaderRow) resizeTarget(ctx *Context, f *headerRowFrame) *Column {
	if ctx.Input == nil {
		return nil
	}
	input := ctx.Input
	half := ctx.Style().ResizeHandleWidth / 2

	if input.MouseY < f.origin.Y || input.MouseY >= f.origin.Y+hr.height {
		return nil
	}

	for i := range f.metrics.Columns {
		col := &f.metrics.Columns[i]
		if col.Key == SelectorColumnKey {
			continue
		}
		edge := hr.cellX(f, *col) + col.Width
		if input.MouseX >= edge-half && input.MouseX <= edge+half {
			return col
		}
	}
	return nil
}

// handleResizeGesture runs the drag state machine for column resizing:
// press on a divider starts, movement updates the candidate width,
// release commits through the container's callbacks.
func (hr *HeaderRow) handleResizeGesture(ctx *Context, f *headerRowFrame) {
	input := ctx.Input
	if input == nil {
		return
	}

	if !hr.resizing {
		if input.MouseClicked(MouseButtonLeft) {
			if col := hr.resizeTarget(ctx, f); col != nil {
				hr.resizing = true
				hr.resizeKey = col.Key
				hr.grabOffset = (hr.cellX(f, *col) + col.Width) - input.MouseX
				if hr.onResizeStart != nil {
					hr.onResizeStart(*col, col.Width)
				}
			}
		}
		return
	}

	col := f.metrics.ColumnByKey(hr.resizeKey)
	if col == nil {
		// Column vanished mid-drag; abandon the gesture without commit
		hr.resizing = false
		hr.resizeKey = ""
		return
	}

	// Candidate width from the pointer, preserving the grab offset so
	// the divider stays under the cursor.
	width := (input.MouseX + hr.grabOffset) - hr.cellX(f, *col)

	if input.MouseDown(MouseButtonLeft) {
		if hr.onResizeMove != nil {
			hr.onResizeMove(*col, width)
		}
		// Highlight the active divider
		edge := hr.cellX(f, *col) + col.Width
		ctx.DrawList.AddLine(edge, f.origin.Y, edge, f.origin.Y+hr.height,
			ctx.Style().ResizeHandleActiveColor, 2)
		return
	}

	// Button released: the gesture is over
	hr.resizing = false
	hr.resizeKey = ""
	if hr.onResizeEnd != nil {
		hr.onResizeEnd()
	}
}

// handleDropGesture runs the column reorder drag: press on a label
// cell, move past a threshold, release over another column.
func (hr *HeaderRow) handleDropGesture(ctx *Context, f *headerRowFrame) {
	input := ctx.Input
	if input == nil || hr.onHeaderDrop == nil || hr.resizing {
		return
	}

	const dragThreshold = 4

	if hr.drag.sourceKey == "" {
		if input.MouseClicked(MouseButtonLeft) && hr.resizeTarget(ctx, f) == nil {
			if col := hr.columnAt(f, input.MouseX, input.MouseY); col != nil && col.Key != SelectorColumnKey {
				hr.drag = headerDrag{sourceKey: col.Key, startX: input.MouseX}
			}
		}
		return
	}

	if input.MouseDown(MouseButtonLeft) {
		if !hr.drag.active {
			dx := input.MouseX - hr.drag.startX
			if dx < -dragThreshold || dx > dragThreshold {
				hr.drag.active = true
			}
		}
		if hr.drag.active {
			// Ghost marker over the drop target
			if target := hr.columnAt(f, input.MouseX, input.MouseY); target != nil && target.Key != hr.drag.sourceKey {
				x := hr.cellX(f, *target)
				ctx.DrawList.AddLine(x, f.origin.Y, x, f.origin.Y+hr.height,
					ctx.Style().ResizeHandleActiveColor, 2)
			}
		}
		return
	}

	// Released
	if hr.drag.active {
		if target := hr.columnAt(f, input.MouseX, input.MouseY); target != nil &&
			target.Key != hr.drag.sourceKey && target.Key != SelectorColumnKey {
			hr.onHeaderDrop(hr.drag.sourceKey, target.Key)
		}
	}
	hr.drag = headerDrag{}
}

// columnAt returns the column under the given point, or nil.
func (hr *HeaderRow) columnAt(f *headerRowFrame, x, y float32) *Column {
	if y < f.origin.Y || y >= f.origin.Y+hr.height {
		return nil
	}
	for i := range f.metrics.Columns {
		col := &f.metrics.Columns[i]
		cx := hr.cellX(f, *col)
		if x >= cx && x < cx+col.Width {
			return col
		}
	}
	return nil
}
