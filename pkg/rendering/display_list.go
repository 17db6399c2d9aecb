package rendering

// DisplayOp is one recorded drawing operation. Recorded coordinates are
// absolute: the recording canvas resolves its transform stack while
// recording, so assertions never need to replay Save/Translate chains.
type DisplayOp interface {
	isDisplayOp()
}

// ClearOp records a full-surface clear.
type ClearOp struct {
	Color Color
}

// RectOp records a filled rectangle.
type RectOp struct {
	Rect  Rect
	Color Color
}

// TextOp records a line of text.
type TextOp struct {
	Text     string
	Position Offset
	Color    Color
}

func (ClearOp) isDisplayOp() {}
func (RectOp) isDisplayOp()  {}
func (TextOp) isDisplayOp()  {}

// DisplayListCanvas is a Canvas that records operations instead of
// rasterizing them. Used by the headless window path and by paint tests.
type DisplayListCanvas struct {
	ops   []DisplayOp
	stack []Offset
	shift Offset
}

// NewDisplayListCanvas creates an empty recording canvas.
func NewDisplayListCanvas() *DisplayListCanvas {
	return &DisplayListCanvas{}
}

func (c *DisplayListCanvas) Save() {
	c.stack = append(c.stack, c.shift)
}

func (c *DisplayListCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.shift = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *DisplayListCanvas) Translate(dx, dy float64) {
	c.shift.X += dx
	c.shift.Y += dy
}

func (c *DisplayListCanvas) Clear(color Color) {
	c.ops = append(c.ops, ClearOp{Color: color})
}

func (c *DisplayListCanvas) FillRect(rect Rect, color Color) {
	c.ops = append(c.ops, RectOp{Rect: rect.Translate(c.shift.X, c.shift.Y), Color: color})
}

func (c *DisplayListCanvas) DrawText(text string, position Offset, color Color) {
	c.ops = append(c.ops, TextOp{Text: text, Position: position.Add(c.shift), Color: color})
}

// Ops returns the recorded operations in draw order.
func (c *DisplayListCanvas) Ops() []DisplayOp {
	return c.ops
}

// Reset discards all recorded operations and transform state.
func (c *DisplayListCanvas) Reset() {
	c.ops = nil
	c.stack = nil
	c.shift = Offset{}
}

// Texts returns the text content of every recorded TextOp, in draw order.
func (c *DisplayListCanvas) Texts() []string {
	var texts []string
	for _, op := range c.ops {
		if textOp, ok := op.(TextOp); ok {
			texts = append(texts, textOp.Text)
		}
	}
	return texts
}
