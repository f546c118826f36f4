package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
)

// View draws a model onto a tcell screen.
//
// A View observes the model and its clipboard. Notifications only mark the
// view dirty; drawing happens when the event loop calls Draw, so observers
// never touch the screen while the model is mid-dispatch.
type View struct {
	screen tcell.Screen
	model  *engine.Model
	styles Styles

	tabWidth int

	// First visible line and first visible display column.
	top  int
	left int

	status   Status
	dirty    bool
	attached bool
}

// Option configures a View.
type Option func(*View)

// WithStyles sets the view styles.
func WithStyles(s Styles) Option {
	return func(v *View) {
		v.styles = s
	}
}

// WithTabWidth sets the tab stop distance.
func WithTabWidth(n int) Option {
	return func(v *View) {
		if n > 0 {
			v.tabWidth = n
		}
	}
}

// New creates a view of model on screen.
func New(screen tcell.Screen, model *engine.Model, opts ...Option) *View {
	v := &View{
		screen:   screen,
		model:    model,
		styles:   DefaultStyles(),
		tabWidth: DefaultTabWidth,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Attach registers the view as an observer of the model and its clipboard.
func (v *View) Attach() {
	if v.attached {
		return
	}
	v.model.AddTextObserver(v)
	v.model.AddCursorObserver(v)
	v.model.AddSelectionObserver(v)
	v.model.Clipboard().AddObserver(v)
	v.attached = true
}

// Detach removes the view's observers.
func (v *View) Detach() {
	if !v.attached {
		return
	}
	_ = v.model.RemoveTextObserver(v)
	_ = v.model.RemoveCursorObserver(v)
	_ = v.model.RemoveSelectionObserver(v)
	_ = v.model.Clipboard().RemoveObserver(v)
	v.attached = false
}

// TextChanged implements engine.TextObserver.
func (v *View) TextChanged() { v.dirty = true }

// CursorMoved implements engine.CursorObserver.
func (v *View) CursorMoved(buffer.Location) { v.dirty = true }

// SelectionChanged implements engine.SelectionObserver.
func (v *View) SelectionChanged() { v.dirty = true }

// ClipboardChanged implements clipboard.Observer.
func (v *View) ClipboardChanged() { v.dirty = true }

// SetStatus replaces the status line contents.
func (v *View) SetStatus(s Status) {
	if s != v.status {
		v.status = s
		v.dirty = true
	}
}

// Status returns the status line contents.
func (v *View) Status() Status {
	return v.status
}

// Invalidate forces the next Draw to repaint, e.g. after a resize.
func (v *View) Invalidate() {
	v.dirty = true
}

// Dirty reports whether the view needs to be drawn.
func (v *View) Dirty() bool {
	return v.dirty
}

// Top returns the index of the first visible line.
func (v *View) Top() int {
	return v.top
}

// Draw repaints the screen if the view is dirty.
func (v *View) Draw() {
	if !v.dirty {
		return
	}
	v.dirty = false

	width, height := v.screen.Size()
	v.screen.Clear()
	if width <= 0 || height <= 0 {
		v.screen.Show()
		return
	}

	rows := height - 1
	cursor := v.model.CursorLocation()
	v.scrollTo(cursor, width, rows)

	if rows > 0 {
		v.drawLines(width, rows)
	}
	v.drawStatus(height-1, width)

	if rows > 0 {
		x := displayColumn(v.model.Line(cursor.Y), cursor.X, v.tabWidth) - v.left
		v.screen.ShowCursor(x, cursor.Y-v.top)
	} else {
		v.screen.HideCursor()
	}
	v.screen.Show()
}

// scrollTo adjusts the viewport so the cursor is visible.
func (v *View) scrollTo(cursor buffer.Location, width, rows int) {
	if rows > 0 {
		if cursor.Y < v.top {
			v.top = cursor.Y
		} else if cursor.Y >= v.top+rows {
			v.top = cursor.Y - rows + 1
		}
	}
	if last := v.model.LineCount() - 1; v.top > last {
		v.top = max(last, 0)
	}

	col := displayColumn(v.model.Line(cursor.Y), cursor.X, v.tabWidth)
	if col < v.left {
		v.left = col
	} else if col >= v.left+width {
		v.left = col - width + 1
	}
}

// drawLines draws the visible lines with the selection highlighted.
func (v *View) drawLines(width, rows int) {
	end := min(v.top+rows, v.model.LineCount())
	it, err := v.model.LinesRange(v.top, end)
	if err != nil {
		return
	}
	sel, hasSel := v.model.SelectionRange()

	for it.Next() {
		y := it.Index()
		row := y - v.top
		col := 0
		x := 0
		for _, r := range it.Line() {
			w := cellWidth(r, col, v.tabWidth)
			style := v.styles.Text
			if hasSel && sel.Contains(buffer.NewLocation(x, y)) {
				style = v.styles.Selection
			}
			v.drawCell(col-v.left, row, r, w, width, style)
			col += w
			x++
		}
		// A selection running past the end of the line covers its newline.
		if hasSel && y < v.model.LineCount()-1 && sel.Contains(buffer.NewLocation(x, y)) {
			v.drawCell(col-v.left, row, ' ', 1, width, v.styles.Selection)
		}
	}
}

// drawCell draws r occupying w cells starting at screen column sx.
// Cells scrolled off either edge are skipped.
func (v *View) drawCell(sx, row int, r rune, w, width int, style tcell.Style) {
	if r == '\t' || r < ' ' {
		for i := 0; i < w; i++ {
			if c := sx + i; c >= 0 && c < width {
				v.screen.SetContent(c, row, ' ', nil, style)
			}
		}
		return
	}
	if sx < 0 || sx+w > width {
		return
	}
	v.screen.SetContent(sx, row, r, nil, style)
}
