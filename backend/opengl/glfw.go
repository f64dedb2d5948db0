package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
)

// GLFWInputAdapter adapts GLFW input to datagrid.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *datagrid.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  datagrid.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *datagrid.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *datagrid.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	gridKey := glfwKeyToGridKey(key)
	if gridKey == datagrid.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(gridKey, true)
	case glfw.Release:
		a.input.SetKey(gridKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	gridButton := glfwMouseButtonToGrid(button)
	if gridButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(gridButton, true)
	case glfw.Release:
		a.input.SetMouseButton(gridButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToGridKey maps GLFW keys to grid keys.
func glfwKeyToGridKey(key glfw.Key) datagrid.Key {
	switch key {
	case glfw.KeyTab:
		return datagrid.KeyTab
	case glfw.KeyLeft:
		return datagrid.KeyLeft
	case glfw.KeyRight:
		return datagrid.KeyRight
	case glfw.KeyUp:
		return datagrid.KeyUp
	case glfw.KeyDown:
		return datagrid.KeyDown
	case glfw.KeyHome:
		return datagrid.KeyHome
	case glfw.KeyEnd:
		return datagrid.KeyEnd
	case glfw.KeyDelete:
		return datagrid.KeyDelete
	case glfw.KeyBackspace:
		return datagrid.KeyBackspace
	case glfw.KeySpace:
		return datagrid.KeySpace
	case glfw.KeyEnter:
		return datagrid.KeyEnter
	case glfw.KeyEscape:
		return datagrid.KeyEscape
	default:
		return datagrid.KeyNone
	}
}

// glfwMouseButtonToGrid maps GLFW mouse buttons to grid mouse buttons.
func glfwMouseButtonToGrid(button glfw.MouseButton) datagrid.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return datagrid.MouseButtonLeft
	case glfw.MouseButtonRight:
		return datagrid.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return datagrid.MouseButtonMiddle
	default:
		return -1
	}
}
