package datagrid

// FilterState holds edit state for one per-column filter input.
// Stored in a FrameStore keyed by the column key, so the state follows
// the column across reorders and disappears when the column does.
type FilterState struct {
	Text            string
	CursorPos       int // Cursor position in runes
	Editing         bool
	ScrollOffset    float32
	CursorBlinkTime float32
}

// filterStore keeps filter input state between frames.
var filterStore = NewFrameStore[FilterState]()

// filterStateID maps a column key to its stable filter state ID.
// Deliberately not derived from the ID stack: the filter cell must
// find the same state no matter where in the frame it renders.
func filterStateID(columnKey string) ID {
	return stableID("filter:" + columnKey)
}

// FilterText returns the current filter text for a column.
// Empty string if the user has not typed a filter.
func FilterText(columnKey string) string {
	if state := filterStore.GetIfExists(filterStateID(columnKey)); state != nil {
		return state.Text
	}
	return ""
}

// SetFilterText programmatically sets the filter text for a column.
// Does not invoke any change callback.
func SetFilterText(columnKey, text string) {
	id := filterStateID(columnKey)
	state := filterStore.Get(id, FilterState{})
	state.Text = text
	state.CursorPos = len([]rune(text))
}

// filterInput draws one filter text input inside rect and handles
// editing. Returns true if the text changed this frame.
func (ctx *Context) filterInput(columnKey string, rect Rect, placeholder string) bool {
	id := filterStateID(columnKey)
	state := filterStore.Get(id, FilterState{})

	// Draw background
	bgColor := ctx.style.InputBgColor
	if state.Editing {
		bgColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bgColor)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.InputBorderColor, ctx.style.BorderSize)

	runes := []rune(state.Text)
	textLen := len(runes)

	// Clamp cursor position
	if state.CursorPos > textLen {
		state.CursorPos = textLen
	}
	if state.CursorPos < 0 {
		state.CursorPos = 0
	}

	textX := rect.X + ctx.style.InputPadding
	textY := rect.Y + (rect.H-ctx.LineHeight())/2
	maxWidth := rect.W - ctx.style.InputPadding*2

	// Keep the cursor visible by scrolling the text
	cursorTextWidth := ctx.MeasureText(string(runes[:state.CursorPos])).X
	if cursorTextWidth-state.ScrollOffset > maxWidth {
		state.ScrollOffset = cursorTextWidth - maxWidth + 10
	}
	if cursorTextWidth < state.ScrollOffset {
		state.ScrollOffset = cursorTextWidth
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}

	ctx.DrawList.PushClipRect(textX, rect.Y, textX+maxWidth, rect.Y+rect.H)
	if state.Text == "" && !state.Editing && placeholder != "" {
		ctx.AddText(textX, textY, placeholder, ctx.style.InputPlaceholderColor)
	} else {
		textColor := ctx.style.InputTextColor
		if textColor == 0 {
			textColor = ctx.style.TextColor
		}
		ctx.AddText(textX-state.ScrollOffset, textY, state.Text, textColor)
	}
	ctx.DrawList.PopClipRect()

	// Draw blinking cursor when editing
	if state.Editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			cursorX := textX + cursorTextWidth - state.ScrollOffset
			ctx.DrawList.AddLine(cursorX, rect.Y+2, cursorX, rect.Y+rect.H-2, ctx.style.TextColor, 1)
		}
	}

	// Click inside enters edit mode and positions the cursor;
	// click outside leaves edit mode.
	if ctx.isClicked(rect) {
		state.Editing = true
		state.CursorBlinkTime = 0
		ctx.SetFocused(id)

		clickX := ctx.Input.MouseX - textX + state.ScrollOffset
		newCursorPos := 0
		for i := 0; i <= textLen; i++ {
			charX := ctx.MeasureText(string(runes[:i])).X
			if charX > clickX {
				break
			}
			newCursorPos = i
		}
		state.CursorPos = newCursorPos
	} else if state.Editing && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		state.Editing = false
		if ctx.IsFocused(id) {
			ctx.ClearFocus()
		}
	}

	// Keyboard handling while editing
	changed := false
	if state.Editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		changed = state.handleKeys(ctx.Input)
		if !state.Editing && ctx.IsFocused(id) {
			ctx.ClearFocus()
		}
	}

	return changed
}

// handleKeys processes one frame of keyboard input for the filter.
// Returns true if the text changed.
func (s *FilterState) handleKeys(input *InputState) bool {
	changed := false
	runes := []rune(s.Text)

	// Typed characters insert at the cursor
	if input.HasInputChars() {
		for _, ch := range input.InputChars {
			if ch < 32 {
				continue
			}
			runes = append(runes[:s.CursorPos], append([]rune{ch}, runes[s.CursorPos:]...)...)
			s.CursorPos++
			changed = true
		}
		input.ConsumeInputChars()
	}

	if input.KeyPressed(KeyBackspace) && s.CursorPos > 0 {
		runes = append(runes[:s.CursorPos-1], runes[s.CursorPos:]...)
		s.CursorPos--
		changed = true
	}
	if input.KeyPressed(KeyDelete) && s.CursorPos < len(runes) {
		runes = append(runes[:s.CursorPos], runes[s.CursorPos+1:]...)
		changed = true
	}

	if input.KeyPressed(KeyLeft) && s.CursorPos > 0 {
		s.CursorPos--
	}
	if input.KeyPressed(KeyRight) && s.CursorPos < len(runes) {
		s.CursorPos++
	}
	if input.KeyPressed(KeyHome) {
		s.CursorPos = 0
	}
	if input.KeyPressed(KeyEnd) {
		s.CursorPos = len(runes)
	}

	// Enter and Escape both leave edit mode. There is no revert:
	// the filter has already been applied on every keystroke.
	if input.KeyPressed(KeyEnter) || input.KeyPressed(KeyEscape) {
		s.Editing = false
	}

	if changed {
		s.Text = string(runes)
		s.CursorBlinkTime = 0
	}
	return changed
}
