package term

// ScrollOffset (field on Terminal) is how many lines up from the
// bottom of history the current view is scrolled, 0 meaning "pinned
// to the live buffer". It is view-only bookkeeping: it never affects
// Snapshot()'s cursor/mode view, only which lines a renderer chooses
// to draw via LineAt/VisibleRange.

// ScrollView moves the view by delta lines (positive scrolls back into
// history, negative scrolls toward the live buffer), clamped to
// [0, ScrollbackLines()].
func (t *Terminal) ScrollView(delta int) {
	t.ScrollViewTo(t.ScrollOffset + delta)
}

// ScrollViewTo sets the view offset directly, clamped to the available
// scrollback range.
func (t *Terminal) ScrollViewTo(offset int) {
	max := t.scrollback.Len()
	if offset < 0 {
		offset = 0
	}
	if offset > max {
		offset = max
	}
	t.ScrollOffset = offset
}

// ScrollViewToTop scrolls to the oldest retained scrollback line.
func (t *Terminal) ScrollViewToTop() {
	t.ScrollOffset = t.scrollback.Len()
}

// ScrollViewToBottom pins the view back to the live buffer.
func (t *Terminal) ScrollViewToBottom() {
	t.ScrollOffset = 0
}

// VisibleRange returns the [start, end) absolute line indices (into the
// combined scrollback+primary-buffer history addressed by LineAt) that
// the current ScrollOffset puts on screen, along with the total line
// count.
func (t *Terminal) VisibleRange() (start, end, total int) {
	total = t.TotalLines()
	height := t.primary.Height
	if total <= 0 || height <= 0 {
		return 0, 0, total
	}
	start = total - height - t.ScrollOffset
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > total {
		end = total
	}
	return start, end, total
}
