package rendering

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace returns the bundled fallback font face. Real backends supply
// shaped fonts; the core only needs deterministic metrics for measurement.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// MeasureText returns the pixel bounds of a single line of text in the given
// face. A nil face measures with the default face.
func MeasureText(text string, face font.Face) Size {
	if face == nil {
		face = DefaultFace()
	}
	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	return Size{
		Width:  fixedToFloat(advance),
		Height: fixedToFloat(metrics.Height),
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
