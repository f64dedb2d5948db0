package datagrid

// Capabilities describes what the rendering environment can do.
// The header adjusts its scroll synchronization strategy based on them.
type Capabilities struct {
	// StickyColumns is true when the renderer can pin locked columns
	// in place while the rest of the row scrolls (it supports per-command
	// clip rectangles). When false, the header falls back to offsetting
	// each row by the scroll position itself.
	StickyColumns bool
}

// CapabilityProber is an optional interface a Renderer can implement
// to report its capabilities. Renderers that don't implement it get
// conservative defaults.
type CapabilityProber interface {
	Capabilities() Capabilities
}

// ProbeCapabilities resolves capabilities for a renderer.
// The probe runs once at Grid construction; the result never changes
// for the lifetime of the Grid.
func ProbeCapabilities(r Renderer) Capabilities {
	if p, ok := r.(CapabilityProber); ok {
		return p.Capabilities()
	}
	// Conservative default: assume no clip-rect support, so scroll
	// offsets are fanned out to every row.
	return Capabilities{StickyColumns: false}
}
