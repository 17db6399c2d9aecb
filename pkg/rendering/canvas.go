package rendering

// Canvas records or renders drawing commands. The retained tree paints
// exclusively through this interface; a real backend rasterizes the calls,
// while DisplayListCanvas records them for headless rendering and tests.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// FillRect fills a rectangle with a solid color.
	FillRect(rect Rect, color Color)

	// DrawText draws a single line of text with its top-left corner at the
	// given position.
	DrawText(text string, position Offset, color Color)
}
