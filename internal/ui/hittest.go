package ui

import (
	"github.com/ingyamilmolinar/rangebar/core/model"
	"github.com/ingyamilmolinar/rangebar/internal/utils"
)

// Thumb identifies which selected value a drag session targets.
type Thumb int

const (
	ThumbNone Thumb = iota
	ThumbMin
	ThumbMax
)

func (t Thumb) String() string {
	switch t {
	case ThumbMin:
		return "MIN"
	case ThumbMax:
		return "MAX"
	default:
		return "NONE"
	}
}

// evalPressedThumb decides which thumb (if any) a press at touchX lands
// on. When both thumbs are under the touch (they overlap once the
// selection collapses), the press resolves by which half of the widget
// it falls in: the right half picks MIN since MIN has room to drag
// right, the left half picks MAX. The ratio is taken over the whole
// widget width on purpose, so a collapsed pair never stalls wherever
// it sits.
func evalPressedThumb(r *model.Range, m Metrics, touchX, width float64) Thumb {
	minHit := m.inThumbRange(r, touchX, r.SelectedMin(), width)
	maxHit := m.inThumbRange(r, touchX, r.SelectedMax(), width)
	switch {
	case minHit && maxHit:
		if touchX/width > 0.5 {
			return ThumbMin
		}
		return ThumbMax
	case minHit:
		return ThumbMin
	case maxHit:
		return ThumbMax
	}
	return ThumbNone
}

func (m Metrics) inThumbRange(r *model.Range, touchX float64, value int, width float64) bool {
	return utils.Abs(touchX-m.ValueToScreen(r, value, width)) <= m.ThumbHalfW
}
