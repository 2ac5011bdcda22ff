package ui

import "github.com/ingyamilmolinar/rangebar/internal/utils"

// EventKind discriminates the touch events the bar consumes.
type EventKind int

const (
	EventDown        EventKind = iota // first contact of a gesture
	EventMove                         // any tracked contact moved
	EventUp                           // last contact released
	EventPointerDown                  // additional contact added
	EventPointerUp                    // non-final contact released
	EventCancel                       // gesture aborted by the host
)

// Pointer is one live contact: host pointer id plus its widget-local
// x-coordinate.
type Pointer struct {
	ID int
	X  float64
}

// TouchEvent mirrors a single host input event. Pointers carries every
// live contact in index order; Index names the acting contact for
// EventPointerDown and EventPointerUp (where the departing contact is
// still included, as hosts report it).
type TouchEvent struct {
	Kind     EventKind
	Pointers []Pointer
	Index    int
}

// Translated shifts every pointer by dx, converting between window and
// widget coordinates.
func (e TouchEvent) Translated(dx float64) TouchEvent {
	ps := make([]Pointer, len(e.Pointers))
	for i, p := range e.Pointers {
		ps[i] = Pointer{ID: p.ID, X: p.X + dx}
	}
	return TouchEvent{Kind: e.Kind, Pointers: ps, Index: e.Index}
}

func (e TouchEvent) last() (Pointer, bool) {
	if len(e.Pointers) == 0 {
		return Pointer{}, false
	}
	return e.Pointers[len(e.Pointers)-1], true
}

func (e TouchEvent) pointerX(id int) (float64, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p.X, true
		}
	}
	return 0, false
}

// HandleTouch feeds one event through the drag state machine. It
// returns false only for an EventDown that missed both thumbs, in
// which case the host should treat the gesture as unhandled. Events
// referencing unknown pointers degrade to no-ops.
func (b *Bar) HandleTouch(ev TouchEvent) bool {
	switch ev.Kind {
	case EventDown:
		return b.handleDown(ev)
	case EventMove:
		b.handleMove(ev)
	case EventUp:
		b.handleUp(ev)
	case EventPointerDown:
		b.handlePointerDown(ev)
	case EventPointerUp:
		b.handlePointerUp(ev)
	case EventCancel:
		b.handleCancel()
	}
	return true
}

func (b *Bar) handleDown(ev TouchEvent) bool {
	p, ok := ev.last()
	if !ok {
		return false
	}
	b.activePointer = p.ID
	b.downX = p.X
	b.pressedThumb = evalPressedThumb(b.rng, b.metrics, b.downX, b.width())
	if b.pressedThumb == ThumbNone {
		return false
	}
	b.logger.Debugf("[TOUCH] down on %s thumb at x=%.1f (pointer %d)", b.pressedThumb, p.X, p.ID)
	// Contact directly on a thumb starts the drag immediately; the
	// slop gate only applies to contacts adopted mid-gesture.
	b.setPressed(true)
	b.surface.Invalidate()
	b.startTracking()
	b.track(ev)
	b.surface.ClaimGesture()
	return true
}

func (b *Bar) handleMove(ev TouchEvent) {
	if b.pressedThumb == ThumbNone {
		return
	}
	if b.dragging {
		b.track(ev)
	} else if x, ok := ev.pointerX(b.activePointer); ok && utils.Abs(x-b.downX) > b.touchSlop {
		b.logger.Debugf("[TOUCH] slop crossed (%.1f px), drag confirmed", utils.Abs(x-b.downX))
		b.setPressed(true)
		b.surface.Invalidate()
		b.startTracking()
		b.track(ev)
		b.surface.ClaimGesture()
	}
	if b.notifyWhileDragging && b.onRangeChange != nil {
		b.onRangeChange(b.rng.SelectedMin(), b.rng.SelectedMax())
	}
}

func (b *Bar) handleUp(ev TouchEvent) {
	if b.dragging {
		b.track(ev)
		b.stopTracking()
		b.setPressed(false)
	} else {
		// Release without ever crossing the slop threshold: a tap.
		// Apply the release coordinate as one start/track/stop.
		b.startTracking()
		b.track(ev)
		b.stopTracking()
	}
	b.pressedThumb = ThumbNone
	b.activePointer = invalidPointerID
	b.surface.Invalidate()
	if b.onRangeChange != nil {
		b.onRangeChange(b.rng.SelectedMin(), b.rng.SelectedMax())
	}
}

func (b *Bar) handlePointerDown(ev TouchEvent) {
	p, ok := ev.last()
	if !ok {
		return
	}
	// The new contact becomes the threshold reference; the drag itself
	// neither starts nor stops here.
	b.downX = p.X
	b.activePointer = p.ID
	b.logger.Debugf("[TOUCH] pointer %d added at x=%.1f", p.ID, p.X)
	b.surface.Invalidate()
}

func (b *Bar) handlePointerUp(ev TouchEvent) {
	if ev.Index < 0 || ev.Index >= len(ev.Pointers) {
		return
	}
	if ev.Pointers[ev.Index].ID == b.activePointer {
		// The active pointer left. Re-home onto the remaining contact
		// so the drag survives the substitution.
		newIndex := 0
		if ev.Index == 0 {
			newIndex = 1
		}
		if newIndex < len(ev.Pointers) {
			b.downX = ev.Pointers[newIndex].X
			b.activePointer = ev.Pointers[newIndex].ID
			b.logger.Debugf("[TOUCH] re-homed onto pointer %d", b.activePointer)
		}
	}
	b.surface.Invalidate()
}

func (b *Bar) handleCancel() {
	if b.dragging {
		b.stopTracking()
		b.setPressed(false)
	}
	b.pressedThumb = ThumbNone
	b.activePointer = invalidPointerID
	b.logger.Debugf("[TOUCH] gesture cancelled")
	b.surface.Invalidate()
}

// track maps the active pointer's x onto the pressed thumb's value.
// ScreenToValue clamps onto the track, so the setters cannot fail here.
func (b *Bar) track(ev TouchEvent) {
	x, ok := ev.pointerX(b.activePointer)
	if !ok {
		return
	}
	v := b.metrics.ScreenToValue(b.rng, x, b.width())
	switch b.pressedThumb {
	case ThumbMin:
		_ = b.rng.SetSelectedMin(v)
	case ThumbMax:
		_ = b.rng.SetSelectedMax(v)
	}
}

func (b *Bar) startTracking() { b.dragging = true }
func (b *Bar) stopTracking()  { b.dragging = false }

func (b *Bar) setPressed(pressed bool) { b.pressedVisual = pressed }
