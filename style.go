package datagrid

// Spacing constants for consistent layout.
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of grid elements.
type Style struct {
	// Text colors
	TextColor         uint32
	TextDisabledColor uint32

	// Header colors
	HeaderBgColor      uint32 // Header cell background
	HeaderTextColor    uint32 // Header text (0 = use TextColor)
	HeaderHoveredColor uint32 // Header cell background when hovered
	SortIndicatorColor uint32 // Sort direction triangle

	// Filter row colors
	FilterBgColor         uint32 // Filter cell background
	InputBgColor          uint32 // Filter input background
	InputFocusedBgColor   uint32 // Filter input background while editing
	InputBorderColor      uint32
	InputTextColor        uint32 // Filter input text (0 = use TextColor)
	InputPlaceholderColor uint32

	// Checkbox colors
	CheckboxBgColor     uint32
	CheckboxBorderColor uint32
	CheckboxCheckColor  uint32

	// Resize handle
	ResizeHandleColor       uint32 // Divider line between columns
	ResizeHandleActiveColor uint32 // Divider while dragging

	// Borders
	BorderColor uint32

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Default gap between items
	CellPadding   float32 // Horizontal padding inside header cells
	InputPadding  float32
	BorderSize    float32
	ScrollbarSize float32 // Extra width reserved past the last column

	// Resize handle hit zone width (centered on the column divider)
	ResizeHandleWidth float32
}

// DefaultStyle returns the default dark style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		// Text
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		// Header
		HeaderBgColor:      RGBA(40, 40, 40, 255),
		HeaderTextColor:    0, // Use TextColor
		HeaderHoveredColor: RGBA(60, 60, 60, 255),
		SortIndicatorColor: RGBA(180, 180, 180, 255),

		// Filter row
		FilterBgColor:         RGBA(35, 35, 35, 255),
		InputBgColor:          RGBA(30, 30, 30, 255),
		InputFocusedBgColor:   RGBA(40, 40, 50, 255),
		InputBorderColor:      RGBA(100, 100, 100, 255),
		InputTextColor:        0, // Use TextColor
		InputPlaceholderColor: RGBA(110, 110, 110, 255),

		// Checkbox
		CheckboxBgColor:     RGBA(30, 30, 30, 255),
		CheckboxBorderColor: RGBA(100, 100, 100, 255),
		CheckboxCheckColor:  ColorWhite,

		// Resize handle
		ResizeHandleColor:       RGBA(80, 80, 80, 255),
		ResizeHandleActiveColor: RGBA(0, 150, 200, 255),

		// Borders
		BorderColor: RGBA(80, 80, 80, 255),

		// Scrollbar
		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(80, 80, 80, 255),

		// Sizing
		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		CellPadding:   8,
		InputPadding:  4,
		BorderSize:    1,
		ScrollbarSize: 12,

		ResizeHandleWidth: 6,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),

		HeaderBgColor:      RGBA(230, 230, 230, 255),
		HeaderTextColor:    RGBA(20, 20, 20, 255),
		HeaderHoveredColor: RGBA(215, 215, 215, 255),
		SortIndicatorColor: RGBA(80, 80, 80, 255),

		FilterBgColor:         RGBA(240, 240, 240, 255),
		InputBgColor:          ColorWhite,
		InputFocusedBgColor:   ColorWhite,
		InputBorderColor:      RGBA(150, 150, 150, 255),
		InputTextColor:        RGBA(20, 20, 20, 255),
		InputPlaceholderColor: RGBA(160, 160, 160, 255),

		CheckboxBgColor:     ColorWhite,
		CheckboxBorderColor: RGBA(150, 150, 150, 255),
		CheckboxCheckColor:  RGBA(20, 20, 20, 255),

		ResizeHandleColor:       RGBA(200, 200, 200, 255),
		ResizeHandleActiveColor: RGBA(0, 120, 215, 255),

		BorderColor: RGBA(200, 200, 200, 255),

		ScrollbarBgColor:   RGBA(240, 240, 240, 255),
		ScrollbarGrabColor: RGBA(180, 180, 180, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		CellPadding:   8,
		InputPadding:  4,
		BorderSize:    1,
		ScrollbarSize: 12,

		ResizeHandleWidth: 6,
	}
}
