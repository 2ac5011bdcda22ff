package model

import (
	"errors"
	"fmt"

	bar_log "github.com/ingyamilmolinar/rangebar/internal/log"
)

// ErrOutOfRange is returned when a selected value falls outside the
// absolute bounds.
var ErrOutOfRange = errors.New("value outside absolute range")

// Range holds the absolute bounds of the selectable domain and the two
// currently selected values. Every mutation re-establishes
// absoluteMin <= selectedMin <= selectedMax <= absoluteMax.
type Range struct {
	absoluteMin int
	absoluteMax int
	selectedMin int
	selectedMax int
	onChange    func() // redraw hook, optional
	logger      *bar_log.Logger
}

// New creates a Range spanning [absMin, absMax] with the full range
// selected.
func New(absMin, absMax int, logger *bar_log.Logger) *Range {
	return &Range{
		absoluteMin: absMin,
		absoluteMax: absMax,
		selectedMin: absMin,
		selectedMax: absMax,
		logger:      logger,
	}
}

// SetOnChange registers the hook fired after every successful mutation.
// Hosts use it to request a redraw.
func (r *Range) SetOnChange(fn func()) { r.onChange = fn }

func (r *Range) AbsoluteMin() int { return r.absoluteMin }
func (r *Range) AbsoluteMax() int { return r.absoluteMax }
func (r *Range) SelectedMin() int { return r.selectedMin }
func (r *Range) SelectedMax() int { return r.selectedMax }

// SetSelectedMin sets the lower selected value. Values outside the
// absolute bounds are rejected without touching any state. Setting a
// value above the current selected max drags the max up with it.
func (r *Range) SetSelectedMin(v int) error {
	if v < r.absoluteMin || v > r.absoluteMax {
		return fmt.Errorf("selected min %d not in [%d, %d]: %w", v, r.absoluteMin, r.absoluteMax, ErrOutOfRange)
	}
	r.selectedMin = v
	if v > r.selectedMax {
		r.selectedMax = v
	}
	r.logger.Debugf("[RANGE] selected min -> %d (max %d)", r.selectedMin, r.selectedMax)
	r.changed()
	return nil
}

// SetSelectedMax mirrors SetSelectedMin for the upper value.
func (r *Range) SetSelectedMax(v int) error {
	if v < r.absoluteMin || v > r.absoluteMax {
		return fmt.Errorf("selected max %d not in [%d, %d]: %w", v, r.absoluteMin, r.absoluteMax, ErrOutOfRange)
	}
	r.selectedMax = v
	if v < r.selectedMin {
		r.selectedMin = v
	}
	r.logger.Debugf("[RANGE] selected max -> %d (min %d)", r.selectedMax, r.selectedMin)
	r.changed()
	return nil
}

// SetAbsoluteMin moves the lower absolute bound. The selection is left
// alone; hosts that shrink the domain re-validate explicitly.
func (r *Range) SetAbsoluteMin(v int) {
	r.absoluteMin = v
	r.logger.Debugf("[RANGE] absolute min -> %d", v)
	r.changed()
}

// SetAbsoluteMax moves the upper absolute bound, without re-clamping.
func (r *Range) SetAbsoluteMax(v int) {
	r.absoluteMax = v
	r.logger.Debugf("[RANGE] absolute max -> %d", v)
	r.changed()
}

func (r *Range) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}
