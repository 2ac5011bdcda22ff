package ui

import (
	"image"

	"github.com/ingyamilmolinar/rangebar/core/model"
	bar_log "github.com/ingyamilmolinar/rangebar/internal/log"
)

const invalidPointerID = -1

// DefaultTouchSlop is the displacement in px below which a contact is
// still a tap. Hosts with their own platform constant inject it via
// SetTouchSlop.
const DefaultTouchSlop = 8

// Surface is the host the bar lives on. The bar never paints
// synchronously; Invalidate is an asynchronous redraw request the host
// coalesces however it likes.
type Surface interface {
	Invalidate()
	// Bounds reports the widget rectangle in screen pixels.
	Bounds() image.Rectangle
	// ClaimGesture asks ancestor containers not to intercept the rest
	// of the current gesture.
	ClaimGesture()
}

// Bar is a dual-thumb range selector: two draggable thumbs on a
// horizontal track picking a [min, max] sub-range of an absolute range.
type Bar struct {
	rng     *model.Range
	metrics Metrics
	surface Surface
	logger  *bar_log.Logger

	notifyWhileDragging bool
	onRangeChange       func(minValue, maxValue int)

	/* drag session, scoped to one gesture */
	touchSlop     float64
	pressedThumb  Thumb
	pressedVisual bool
	downX         float64
	activePointer int
	dragging      bool
}

// New creates a Bar selecting within [absMin, absMax], initially with
// the full range selected. absMin must be strictly below absMax for
// the value mapping to be defined.
func New(absMin, absMax int, surface Surface, logger *bar_log.Logger) *Bar {
	b := &Bar{
		rng:           model.New(absMin, absMax, logger),
		metrics:       DefaultMetrics(),
		surface:       surface,
		logger:        logger,
		touchSlop:     DefaultTouchSlop,
		pressedThumb:  ThumbNone,
		activePointer: invalidPointerID,
	}
	b.rng.SetOnChange(surface.Invalidate)
	return b
}

func (b *Bar) SelectedMinValue() int { return b.rng.SelectedMin() }
func (b *Bar) SelectedMaxValue() int { return b.rng.SelectedMax() }
func (b *Bar) AbsoluteMinValue() int { return b.rng.AbsoluteMin() }
func (b *Bar) AbsoluteMaxValue() int { return b.rng.AbsoluteMax() }

// SetSelectedMinValue programmatically moves the lower thumb. Values
// outside the absolute bounds are rejected.
func (b *Bar) SetSelectedMinValue(v int) error { return b.rng.SetSelectedMin(v) }

// SetSelectedMaxValue programmatically moves the upper thumb.
func (b *Bar) SetSelectedMaxValue(v int) error { return b.rng.SetSelectedMax(v) }

// SetAbsoluteMinValue rebases the lower bound of the selectable domain.
// The current selection is not re-clamped.
func (b *Bar) SetAbsoluteMinValue(v int) { b.rng.SetAbsoluteMin(v) }

// SetAbsoluteMaxValue rebases the upper bound of the selectable domain.
func (b *Bar) SetAbsoluteMaxValue(v int) { b.rng.SetAbsoluteMax(v) }

// SetNotifyWhileDragging controls whether the change callback fires on
// every move of an active drag, or only on release. Default is false.
func (b *Bar) SetNotifyWhileDragging(flag bool) { b.notifyWhileDragging = flag }

func (b *Bar) NotifyWhileDragging() bool { return b.notifyWhileDragging }

// SetOnRangeChange registers the callback invoked with the selected
// values. It always fires exactly once per release, and additionally
// per move while dragging when SetNotifyWhileDragging(true).
func (b *Bar) SetOnRangeChange(fn func(minValue, maxValue int)) { b.onRangeChange = fn }

// SetTouchSlop injects the host's tap-vs-drag displacement threshold.
func (b *Bar) SetTouchSlop(px float64) { b.touchSlop = px }

// SetMetrics replaces the glyph-derived geometry, e.g. after the host
// swaps the thumb asset.
func (b *Bar) SetMetrics(m Metrics) {
	b.metrics = m
	b.surface.Invalidate()
}

func (b *Bar) Metrics() Metrics { return b.metrics }

// Dragging reports whether a drag session is currently confirmed.
func (b *Bar) Dragging() bool { return b.dragging }

// SaveState captures the persistent part of the widget: exactly the
// two selected values. Bounds and interaction state are reconstructed
// from the constructor.
func (b *Bar) SaveState() (minValue, maxValue int) {
	return b.rng.SelectedMin(), b.rng.SelectedMax()
}

// RestoreState re-applies a selection captured by SaveState.
func (b *Bar) RestoreState(minValue, maxValue int) error {
	if err := b.rng.SetSelectedMax(maxValue); err != nil {
		return err
	}
	return b.rng.SetSelectedMin(minValue)
}

// DesiredSize reports the measure pass result: the available width
// (200 when unconstrained) by the thumb glyph height.
func (b *Bar) DesiredSize(availW int) (w, h int) {
	w = availW
	if w <= 0 {
		w = 200
	}
	return w, int(2 * b.metrics.ThumbHalfH)
}

func (b *Bar) width() float64 { return float64(b.surface.Bounds().Dx()) }
