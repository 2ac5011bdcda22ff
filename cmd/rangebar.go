package main

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	bar_log "github.com/ingyamilmolinar/rangebar/internal/log"
	"github.com/ingyamilmolinar/rangebar/internal/ui"
)

const (
	initialW = 640
	initialH = 480
	margin   = 20
)

// demo hosts a single Bar, acting as its Surface. Ebiten redraws every
// frame, so Invalidate and ClaimGesture have nothing extra to do here;
// a retained-mode host would schedule a paint and pin the gesture.
type demo struct {
	bar    *ui.Bar
	events *ui.EventSource
	w, h   int
	status string
}

func (d *demo) Invalidate()   {}
func (d *demo) ClaimGesture() {}

func (d *demo) Bounds() image.Rectangle {
	_, barH := d.bar.DesiredSize(d.w - 2*margin)
	mid := d.h / 2
	return image.Rect(margin, mid-barH/2, d.w-margin, mid+barH/2)
}

func (d *demo) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dx := -float64(d.Bounds().Min.X)
	for _, ev := range d.events.Poll() {
		d.bar.HandleTouch(ev.Translated(dx))
	}
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	d.bar.Draw(screen)
	ebitenutil.DebugPrintAt(screen, d.status, margin, d.Bounds().Max.Y+10)
}

func (d *demo) Layout(outsideW, outsideH int) (int, int) {
	d.w, d.h = outsideW, outsideH
	return outsideW, outsideH
}

func (d *demo) updateStatus() {
	d.status = fmt.Sprintf("Values: %d to %d. Range is from %d to %d",
		d.bar.SelectedMinValue(), d.bar.SelectedMaxValue(),
		d.bar.AbsoluteMinValue(), d.bar.AbsoluteMaxValue())
}

func main() {
	logger := bar_log.New(os.Stdout, bar_log.FromEnv())

	d := &demo{events: ui.NewEventSource(), w: initialW, h: initialH}
	d.bar = ui.New(0, 100, d, logger)
	d.bar.SetNotifyWhileDragging(true)
	d.bar.SetOnRangeChange(func(minValue, maxValue int) {
		d.updateStatus()
		logger.Debugf("[DEMO] range changed: %d..%d", minValue, maxValue)
	})
	d.updateStatus()

	ebiten.SetWindowSize(initialW, initialH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("rangebar demo")
	if err := ebiten.RunGame(d); err != nil {
		logger.Errorf("[DEMO] %v", err)
		os.Exit(1)
	}
}
