package rendering

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#272822", RGB(0x27, 0x28, 0x22), true},
		{"272822", RGB(0x27, 0x28, 0x22), true},
		{"#80FF0000", RGBA(0xFF, 0, 0, 0x80), true},
		{"#FFF", 0, false},
		{"#GGGGGG", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if !tt.ok {
			assert.Error(t, err, "ParseHex(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseHex(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseHex(%q)", tt.in)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#FF272822", RGB(0x27, 0x28, 0x22).String())
}

func TestRectContains(t *testing.T) {
	rect := RectFromLTWH(10, 10, 20, 20)
	assert.True(t, rect.Contains(Offset{X: 10, Y: 10}))
	assert.True(t, rect.Contains(Offset{X: 29, Y: 29}))
	assert.False(t, rect.Contains(Offset{X: 30, Y: 30}), "right/bottom edges are exclusive")
	assert.False(t, rect.Contains(Offset{X: 9, Y: 15}))
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	assert.Equal(t, RectFromLTWH(5, 5, 5, 5), a.Intersect(b))
	assert.True(t, a.Intersect(RectFromLTWH(20, 20, 5, 5)).IsEmpty())
}

func TestSizeClamp(t *testing.T) {
	assert.Equal(t, Size{Width: 5, Height: 3}, Size{Width: 9, Height: 3}.Clamp(Size{Width: 5, Height: 7}))
}

func TestDisplayListRecordsAbsoluteCoordinates(t *testing.T) {
	canvas := NewDisplayListCanvas()
	canvas.Clear(ColorBlack)
	canvas.Save()
	canvas.Translate(10, 20)
	canvas.FillRect(RectFromLTWH(0, 0, 5, 5), ColorWhite)
	canvas.Save()
	canvas.Translate(1, 1)
	canvas.DrawText("hi", Offset{X: 2, Y: 3}, ColorWhite)
	canvas.Restore()
	canvas.Restore()
	canvas.FillRect(RectFromLTWH(0, 0, 1, 1), ColorWhite)

	want := []DisplayOp{
		ClearOp{Color: ColorBlack},
		RectOp{Rect: RectFromLTWH(10, 20, 5, 5), Color: ColorWhite},
		TextOp{Text: "hi", Position: Offset{X: 13, Y: 24}, Color: ColorWhite},
		RectOp{Rect: RectFromLTWH(0, 0, 1, 1), Color: ColorWhite},
	}
	if diff := cmp.Diff(want, canvas.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"hi"}, canvas.Texts())
}

func TestDisplayListReset(t *testing.T) {
	canvas := NewDisplayListCanvas()
	canvas.Translate(5, 5)
	canvas.FillRect(RectFromLTWH(0, 0, 1, 1), ColorWhite)
	canvas.Reset()
	assert.Empty(t, canvas.Ops())

	canvas.FillRect(RectFromLTWH(0, 0, 1, 1), ColorWhite)
	assert.Equal(t, RectOp{Rect: RectFromLTWH(0, 0, 1, 1), Color: ColorWhite}, canvas.Ops()[0],
		"reset clears the transform as well")
}

func TestMeasureText(t *testing.T) {
	short := MeasureText("hi", nil)
	long := MeasureText("hello there", nil)
	assert.Greater(t, short.Width, 0.0)
	assert.Greater(t, short.Height, 0.0)
	assert.Greater(t, long.Width, short.Width)
	assert.Equal(t, short.Height, long.Height, "single-line height is face-determined")
}
