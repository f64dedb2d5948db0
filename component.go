package datagrid

// Component is the interface that all grid components implement.
// This allows users to compose custom widgets next to the header
// without modifying the core package.
type Component interface {
	// Render draws the component using the provided context.
	Render(ctx *Context)
}

// Renderer is the interface for rendering grid draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Grid manages the immediate mode grid system: one context,
// one renderer, one frame at a time.
type Grid struct {
	renderer Renderer
	style    Style
	caps     Capabilities
	ctx      *Context
}

// GridOption configures a Grid instance.
type GridOption func(*Grid)

// WithStyle sets the grid style.
func WithStyle(style Style) GridOption {
	return func(g *Grid) { g.style = style }
}

// WithCapabilities overrides the renderer capability probe.
// Useful for tests and for forcing the scroll fan-out path.
func WithCapabilities(caps Capabilities) GridOption {
	return func(g *Grid) { g.caps = caps }
}

// New creates a new Grid instance.
// Capabilities are probed from the renderer unless overridden by
// WithCapabilities.
func New(renderer Renderer, opts ...GridOption) *Grid {
	g := &Grid{
		renderer: renderer,
		style:    DefaultStyle(),
		caps:     ProbeCapabilities(renderer),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the grid context.
// Call this at the start of each frame before drawing any UI.
func (g *Grid) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	// Acquire a draw list from the pool
	ctx.DrawList = AcquireDrawList()

	// Set frame state
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	// Reset per-frame state
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all drawing is complete.
func (g *Grid) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	err := g.renderer.Render(g.ctx.DrawList)

	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil

	return err
}

// Context returns the current grid context.
// Only valid between Begin() and End() calls.
func (g *Grid) Context() *Context {
	return g.ctx
}

// Style returns the current grid style.
func (g *Grid) Style() Style {
	return g.style
}

// SetStyle sets the grid style.
func (g *Grid) SetStyle(style Style) {
	g.style = style
}

// Capabilities returns the resolved renderer capabilities.
func (g *Grid) Capabilities() Capabilities {
	return g.caps
}

// Resize notifies the grid of a display size change.
func (g *Grid) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
