package ui

import (
	"github.com/ingyamilmolinar/rangebar/core/model"
	"github.com/ingyamilmolinar/rangebar/internal/utils"
)

// Default thumb glyph size in px, used when the host does not supply
// its own glyph dimensions.
const (
	defaultThumbW = 24
	defaultThumbH = 24
)

// Metrics holds the geometry parameters derived from the thumb glyph.
// The track is inset by Padding on both sides so a thumb centered on a
// track endpoint still renders fully inside the widget.
type Metrics struct {
	ThumbHalfW float64
	ThumbHalfH float64
	Padding    float64 // half the thumb glyph width
}

func NewMetrics(thumbW, thumbH float64) Metrics {
	return Metrics{
		ThumbHalfW: thumbW / 2,
		ThumbHalfH: thumbH / 2,
		Padding:    thumbW / 2,
	}
}

func DefaultMetrics() Metrics { return NewMetrics(defaultThumbW, defaultThumbH) }

// ValueToScreen maps a value in the absolute domain to a widget-local
// x-coordinate on the track. The range's absolute bounds must differ;
// callers guard the degenerate case.
func (m Metrics) ValueToScreen(r *model.Range, value int, width float64) float64 {
	span := float64(r.AbsoluteMax() - r.AbsoluteMin())
	return m.Padding + float64(value-r.AbsoluteMin())*(width-2*m.Padding)/span
}

// ScreenToValue is the inverse of ValueToScreen. The x-coordinate is
// clamped onto the track first, so the result always lies inside the
// absolute bounds. A track too narrow to hold both paddings maps
// everything to the absolute minimum rather than dividing by zero.
func (m Metrics) ScreenToValue(r *model.Range, x, width float64) int {
	if width <= 2*m.Padding {
		return r.AbsoluteMin()
	}
	x = utils.Clamp(x, m.Padding, width-m.Padding)
	span := float64(r.AbsoluteMax() - r.AbsoluteMin())
	return r.AbsoluteMin() + int(span*(x-m.Padding)/(width-2*m.Padding))
}
