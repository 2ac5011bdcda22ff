package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
)

// SetInputForTest replaces input functions during tests and returns a
// function to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	touches func([]ebiten.TouchID) []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldTouches := appendTouchIDs
	oldTouchPos := touchPosition
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	appendTouchIDs = touches
	touchPosition = touchPos
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		appendTouchIDs = oldTouches
		touchPosition = oldTouchPos
	}
}

// Pointer ids 0 is the mouse; touch contacts are offset past it so the
// two sources never collide.
const (
	mousePointerID   = 0
	touchPointerBase = 1
)

// EventSource polls the host input state once per tick and synthesizes
// the typed touch-event stream the Bar consumes: press edges become
// Down/PointerDown, release edges Up/PointerUp, and coordinate changes
// a single batched Move.
type EventSource struct {
	mouseDown bool
	mouseX    float64
	live      []Pointer // touch contacts in index order
	scratch   []ebiten.TouchID
}

func NewEventSource() *EventSource { return &EventSource{} }

// Poll returns the events since the previous call, in order. X
// coordinates are window-relative; hosts translate into widget space.
func (s *EventSource) Poll() []TouchEvent {
	var evs []TouchEvent
	evs = s.pollMouse(evs)
	return s.pollTouches(evs)
}

func (s *EventSource) pollMouse(evs []TouchEvent) []TouchEvent {
	mx, _ := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	mp := []Pointer{{ID: mousePointerID, X: float64(mx)}}
	switch {
	case pressed && !s.mouseDown:
		evs = append(evs, TouchEvent{Kind: EventDown, Pointers: mp})
	case pressed && float64(mx) != s.mouseX:
		evs = append(evs, TouchEvent{Kind: EventMove, Pointers: mp})
	case !pressed && s.mouseDown:
		evs = append(evs, TouchEvent{Kind: EventUp, Pointers: mp})
	}
	s.mouseDown = pressed
	s.mouseX = float64(mx)
	return evs
}

func (s *EventSource) pollTouches(evs []TouchEvent) []TouchEvent {
	s.scratch = appendTouchIDs(s.scratch[:0])
	cur := make([]Pointer, 0, len(s.scratch))
	for _, id := range s.scratch {
		x, _ := touchPosition(id)
		cur = append(cur, Pointer{ID: int(id) + touchPointerBase, X: float64(x)})
	}

	// departures first, one event per contact, against the pre-removal
	// pointer list so PointerUp still includes the leaving contact
	for i := 0; i < len(s.live); {
		if _, ok := pointerByID(cur, s.live[i].ID); ok {
			i++
			continue
		}
		if len(s.live) == 1 {
			evs = append(evs, TouchEvent{Kind: EventUp, Pointers: snapshot(s.live)})
		} else {
			evs = append(evs, TouchEvent{Kind: EventPointerUp, Pointers: snapshot(s.live), Index: i})
		}
		s.live = append(s.live[:i], s.live[i+1:]...)
	}

	// additions
	for _, p := range cur {
		if _, ok := pointerByID(s.live, p.ID); ok {
			continue
		}
		s.live = append(s.live, p)
		kind := EventPointerDown
		if len(s.live) == 1 {
			kind = EventDown
		}
		evs = append(evs, TouchEvent{Kind: kind, Pointers: snapshot(s.live), Index: len(s.live) - 1})
	}

	// batched move for whatever is left
	moved := false
	for i := range s.live {
		if p, ok := pointerByID(cur, s.live[i].ID); ok && p.X != s.live[i].X {
			s.live[i].X = p.X
			moved = true
		}
	}
	if moved {
		evs = append(evs, TouchEvent{Kind: EventMove, Pointers: snapshot(s.live)})
	}
	return evs
}

func pointerByID(ps []Pointer, id int) (Pointer, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

func snapshot(ps []Pointer) []Pointer {
	return append([]Pointer(nil), ps...)
}
