// Example demonstrates the data-grid header over a simple body.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer,
// and renders a header (labels, filters, select-all) above body rows
// drawn by the application. Drag a column divider to resize, click a
// label to sort, type in a filter cell, scroll horizontally with the
// mouse wheel.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "datagrid example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appState is the grid owner: it holds committed metrics, data rows,
// selection, sort, and filters, and applies the header's callbacks.
type appState struct {
	columns  []datagrid.Column
	metrics  datagrid.Metrics
	rows     []datagrid.Row
	selected datagrid.KeySet

	sortColumn    string
	sortDirection datagrid.SortDirection
	comparator    *datagrid.RowComparator

	filters    map[string]string
	scrollLeft float32
}

func newAppState() *appState {
	s := &appState{
		columns: []datagrid.Column{
			{Key: datagrid.SelectorColumnKey, Idx: 0, Width: 32, MinWidth: 32, Locked: true},
			{Key: "name", Name: "Name", Idx: 1, Width: 160, Sortable: true, Filterable: true},
			{Key: "city", Name: "City", Idx: 2, Width: 140, Sortable: true, Filterable: true},
			{Key: "score", Name: "Score", Idx: 3, Width: 100, Sortable: true},
			{Key: "team", Name: "Team", Idx: 4, Width: 200, Sortable: true, Filterable: true},
			{Key: "notes", Name: "Notes", Idx: 5, Width: 320},
		},
		rows: []datagrid.Row{
			{"id": 1, "name": "Avery", "city": "Austin", "score": 91, "team": "Red", "notes": "lead"},
			{"id": 2, "name": "Blake", "city": "Boston", "score": 78, "team": "Blue", "notes": ""},
			{"id": 3, "name": "Casey", "city": "Chicago", "score": 85, "team": "Red", "notes": "new"},
			{"id": 4, "name": "Drew", "city": "Denver", "score": 66, "team": "Green", "notes": ""},
			{"id": 5, "name": "Ellis", "city": "El Paso", "score": 97, "team": "Blue", "notes": "captain"},
		},
		selected:   datagrid.NewKeySet(),
		comparator: datagrid.NewRowComparator("en-US"),
		filters:    make(map[string]string),
	}
	s.recompute()
	return s
}

// recompute re-derives the committed metrics from the column set.
func (s *appState) recompute() {
	s.metrics = datagrid.ComputeMetrics(s.columns, nil, 50)
}

// visibleRows applies filters and sort to the data set.
func (s *appState) visibleRows() []datagrid.Row {
	rows := make([]datagrid.Row, 0, len(s.rows))
	for _, row := range s.rows {
		if s.matches(row) {
			rows = append(rows, row)
		}
	}
	if s.sortDirection != datagrid.SortNone && s.sortColumn != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			return s.comparator.CompareDirected(rows[i][s.sortColumn], rows[j][s.sortColumn], s.sortDirection) < 0
		})
	}
	return rows
}

func (s *appState) matches(row datagrid.Row) bool {
	for key, filter := range s.filters {
		if filter == "" {
			continue
		}
		cell := fmt.Sprintf("%v", row[key])
		if !strings.Contains(strings.ToLower(cell), strings.ToLower(filter)) {
			return false
		}
	}
	return true
}

func (s *appState) distinctValues(columnKey string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, row := range s.rows {
		v := fmt.Sprintf("%v", row[columnKey])
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	return values
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the grid renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	grid := datagrid.New(renderer)
	state := newAppState()

	header := datagrid.NewHeaderContainer(grid.Capabilities())
	activeCell := datagrid.NoCell

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Horizontal scroll from the mouse wheel.
		if input.MouseWheelX != 0 || (input.ModShift && input.MouseWheelY != 0) {
			delta := input.MouseWheelX
			if delta == 0 {
				delta = input.MouseWheelY
			}
			maxScroll := state.metrics.Width - float32(w)
			if maxScroll < 0 {
				maxScroll = 0
			}
			next := state.scrollLeft - delta*24
			if next < 0 {
				next = 0
			}
			if next > maxScroll {
				next = maxScroll
			}
			state.scrollLeft = next
			header.SetScrollLeft(next)
		}

		rows := state.visibleRows()

		header.SetProps(datagrid.HeaderProps{
			Metrics: state.metrics,
			Rows: []datagrid.HeaderRowDescriptor{
				{Kind: datagrid.HeaderRowLabels, Height: 28},
				{Kind: datagrid.HeaderRowFilters, Height: 26, Filterable: true,
					OnFilterChange: func(columnKey, value string) {
						state.filters[columnKey] = value
					}},
			},
			AllRowsSelected: len(state.selected) == len(state.rows) && len(state.rows) > 0,
			RowCount:        len(state.rows),
			RowGetter:       func(i int) datagrid.Row { return state.rows[i] },
			RowKey:          "id",
			SortColumn:      state.sortColumn,
			SortDirection:   state.sortDirection,
			FilterValues:    state.distinctValues,
			OnColumnResize: func(idx int, width float32) {
				for i := range state.columns {
					if state.columns[i].Idx == idx {
						state.columns[i].Width = width
					}
				}
				state.recompute()
			},
			OnSort: func(key string, dir datagrid.SortDirection) {
				state.sortColumn = key
				state.sortDirection = dir
			},
			OnSelectedRowsChange: func(keys datagrid.KeySet) {
				state.selected = keys
			},
			OnCellClick: func(pos datagrid.CellPosition) {
				activeCell = pos
			},
		})

		displaySize := datagrid.Vec2{X: float32(w), Y: float32(h)}
		ctx := grid.Begin(input, displaySize, 1.0/60.0)

		ctx.SetCursorPos(0, 0)
		header.Render(ctx)

		drawBody(ctx, state, header, rows, &activeCell, float32(w), float32(h))

		if err := grid.End(); err != nil {
			return fmt.Errorf("grid render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// drawBody renders the data rows below the header. Body rendering is
// application code; the library only draws the header.
func drawBody(ctx *datagrid.Context, state *appState, header *datagrid.HeaderContainer,
	rows []datagrid.Row, activeCell *datagrid.CellPosition, w, h float32) {

	style := ctx.Style()
	rowHeight := float32(24)
	y := header.Height()

	for rowIdx, row := range rows {
		if y > h {
			break
		}
		if rowIdx%2 == 1 {
			ctx.DrawList.AddRect(0, y, w, rowHeight, datagrid.RGBA(30, 30, 34, 255))
		}
		if state.selected.Contains(row["id"]) {
			ctx.DrawList.AddRect(0, y, w, rowHeight, datagrid.RGBA(50, 100, 150, 120))
		}

		for colIdx, col := range state.metrics.Columns {
			x := col.Left - state.scrollLeft
			if col.Locked {
				x = col.Left
			}
			cellRect := datagrid.Rect{X: x, Y: y, W: col.Width, H: rowHeight}
			if ctx.IsClicked(cellRect) {
				*activeCell = datagrid.CellPosition{Row: rowIdx, Column: colIdx}
			}
			if activeCell.Row == rowIdx && activeCell.Column == colIdx {
				ctx.DrawList.AddRectOutline(x, y, col.Width, rowHeight, datagrid.RGBA(0, 150, 200, 255), 1)
			}
			if col.Key == datagrid.SelectorColumnKey {
				continue
			}
			cell := fmt.Sprintf("%v", row[col.Key])
			ctx.DrawList.PushClipRect(x, y, x+col.Width, y+rowHeight)
			ctx.AddText(x+style.CellPadding, y+(rowHeight-ctx.LineHeight())/2, cell, style.TextColor)
			ctx.DrawList.PopClipRect()
		}
		y += rowHeight
	}
}
