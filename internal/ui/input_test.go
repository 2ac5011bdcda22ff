package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

// fakeInput drives the polled input functions from plain fields.
type fakeInput struct {
	mouseX, mouseY int
	mouseDown      bool
	touches        map[ebiten.TouchID]int // id -> x
	order          []ebiten.TouchID
}

func (f *fakeInput) install() func() {
	return SetInputForTest(
		func() (int, int) { return f.mouseX, f.mouseY },
		func(b ebiten.MouseButton) bool { return f.mouseDown && b == ebiten.MouseButtonLeft },
		func(ids []ebiten.TouchID) []ebiten.TouchID { return append(ids, f.order...) },
		func(id ebiten.TouchID) (int, int) { return f.touches[id], 0 },
	)
}

func (f *fakeInput) press(id ebiten.TouchID, x int) {
	if f.touches == nil {
		f.touches = map[ebiten.TouchID]int{}
	}
	if _, ok := f.touches[id]; !ok {
		f.order = append(f.order, id)
	}
	f.touches[id] = x
}

func (f *fakeInput) release(id ebiten.TouchID) {
	delete(f.touches, id)
	for i, other := range f.order {
		if other == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

func kinds(evs []TouchEvent) []EventKind {
	ks := make([]EventKind, len(evs))
	for i, ev := range evs {
		ks[i] = ev.Kind
	}
	return ks
}

func TestEventSourceMouseLifecycle(t *testing.T) {
	in := &fakeInput{mouseX: 50}
	restore := in.install()
	defer restore()
	src := NewEventSource()

	require.Empty(t, src.Poll(), "idle mouse produces nothing")

	in.mouseDown = true
	evs := src.Poll()
	require.Equal(t, []EventKind{EventDown}, kinds(evs))
	require.Equal(t, []Pointer{{ID: mousePointerID, X: 50}}, evs[0].Pointers)

	in.mouseX = 80
	evs = src.Poll()
	require.Equal(t, []EventKind{EventMove}, kinds(evs))
	require.Equal(t, 80.0, evs[0].Pointers[0].X)

	require.Empty(t, src.Poll(), "held but motionless: no event")

	in.mouseDown = false
	evs = src.Poll()
	require.Equal(t, []EventKind{EventUp}, kinds(evs))
}

func TestEventSourceTouchLifecycle(t *testing.T) {
	in := &fakeInput{}
	restore := in.install()
	defer restore()
	src := NewEventSource()

	in.press(0, 100)
	evs := src.Poll()
	require.Equal(t, []EventKind{EventDown}, kinds(evs))
	require.Equal(t, []Pointer{{ID: touchPointerBase, X: 100}}, evs[0].Pointers)

	in.press(1, 200)
	evs = src.Poll()
	require.Equal(t, []EventKind{EventPointerDown}, kinds(evs))
	require.Equal(t, 1, evs[0].Index)
	require.Len(t, evs[0].Pointers, 2)

	in.press(0, 130)
	evs = src.Poll()
	require.Equal(t, []EventKind{EventMove}, kinds(evs))
	require.Equal(t, []Pointer{
		{ID: touchPointerBase, X: 130},
		{ID: touchPointerBase + 1, X: 200},
	}, evs[0].Pointers)

	// first contact leaves while the second stays: secondary up, with
	// the departing contact still listed at its index
	in.release(0)
	evs = src.Poll()
	require.Equal(t, []EventKind{EventPointerUp}, kinds(evs))
	require.Equal(t, 0, evs[0].Index)
	require.Len(t, evs[0].Pointers, 2)

	in.release(1)
	evs = src.Poll()
	require.Equal(t, []EventKind{EventUp}, kinds(evs))
	require.Equal(t, []Pointer{{ID: touchPointerBase + 1, X: 200}}, evs[0].Pointers)

	require.Empty(t, src.Poll())
}

func TestEventSourceDrivesRehomingThroughBar(t *testing.T) {
	in := &fakeInput{}
	restore := in.install()
	defer restore()
	src := NewEventSource()
	b, _ := newTestBar()

	feed := func() {
		for _, ev := range src.Poll() {
			b.HandleTouch(ev)
		}
	}

	in.press(0, 14) // on the MIN thumb
	feed()
	require.True(t, b.Dragging())

	in.press(1, 60) // second finger elsewhere
	feed()
	require.True(t, b.Dragging())

	in.release(0) // original finger leaves
	feed()
	require.True(t, b.Dragging(), "drag survives the substitution")

	in.press(1, 110) // surviving finger drags
	feed()
	require.Equal(t, 50, b.SelectedMinValue())

	in.release(1)
	feed()
	require.False(t, b.Dragging())
}
