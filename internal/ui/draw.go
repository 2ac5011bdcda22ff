package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawRect fills an axis-aligned rectangle. Defined as a variable so
// tests can override it to capture draw calls.
var drawRect = func(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, c, true)
}

// drawThumb renders one thumb glyph centered at (cx, cy). Overridable
// in tests like drawRect.
var drawThumb = func(dst *ebiten.Image, cx, cy, halfW float32, pressed bool) {
	fill := colThumb
	if pressed {
		fill = colThumbPressed
	}
	vector.DrawFilledCircle(dst, cx, cy, halfW, fill, true)
	vector.StrokeCircle(dst, cx, cy, halfW, 1, colThumbBorder, true)
}

// Draw renders the track, the active-range highlight and both thumbs
// into the surface bounds. Pixel work happens here and only here; the
// state machine just flips Invalidate.
func (b *Bar) Draw(dst *ebiten.Image) {
	r := b.surface.Bounds()
	ox := float64(r.Min.X)
	oy := float64(r.Min.Y)
	w := float64(r.Dx())
	h := float64(r.Dy())

	// background track line, vertically centered
	lineH := 0.3 * b.metrics.ThumbHalfH
	drawRect(dst,
		float32(ox+b.metrics.Padding), float32(oy+0.5*(h-lineH)),
		float32(w-2*b.metrics.Padding), float32(lineH),
		colTrack)

	// active range between the two thumbs
	minX := b.metrics.ValueToScreen(b.rng, b.rng.SelectedMin(), w)
	maxX := b.metrics.ValueToScreen(b.rng, b.rng.SelectedMax(), w)
	drawRect(dst,
		float32(ox+minX), float32(oy+0.5*(h-lineH)),
		float32(maxX-minX), float32(lineH),
		colActiveRange)

	halfW := float32(b.metrics.ThumbHalfW)
	cy := float32(oy + 0.5*h)
	drawThumb(dst, float32(ox+minX), cy, halfW, b.pressedVisual && b.pressedThumb == ThumbMin)
	drawThumb(dst, float32(ox+maxX), cy, halfW, b.pressedVisual && b.pressedThumb == ThumbMax)
}
