package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/rangebar/core/model"
)

func TestEvalPressedThumbSingleHits(t *testing.T) {
	r := model.New(0, 100, testLogger)
	require.NoError(t, r.SetSelectedMin(20))
	require.NoError(t, r.SetSelectedMax(80))
	m := NewMetrics(20, 20) // min thumb at x=50, max thumb at x=170

	require.Equal(t, ThumbMin, evalPressedThumb(r, m, 50, 220))
	require.Equal(t, ThumbMin, evalPressedThumb(r, m, 58, 220))
	require.Equal(t, ThumbMax, evalPressedThumb(r, m, 165, 220))
	require.Equal(t, ThumbNone, evalPressedThumb(r, m, 110, 220))
	require.Equal(t, ThumbNone, evalPressedThumb(r, m, 0, 220))
}

func TestEvalPressedThumbCollapsedTieBreak(t *testing.T) {
	r := model.New(0, 100, testLogger)
	require.NoError(t, r.SetSelectedMax(50))
	require.NoError(t, r.SetSelectedMin(50))
	// A wide glyph keeps the collapsed pair under the touch across
	// most of the track, which is exactly when the tie-break matters.
	m := NewMetrics(160, 24) // pair sits at x=110, hit range [30, 190]

	// right half of the whole widget picks MIN (room to drag right)
	require.Equal(t, ThumbMin, evalPressedThumb(r, m, 0.8*220, 220))
	// left half picks MAX
	require.Equal(t, ThumbMax, evalPressedThumb(r, m, 0.2*220, 220))
	// dead center counts as the left half
	require.Equal(t, ThumbMax, evalPressedThumb(r, m, 110, 220))
}

func TestEvalPressedThumbTieBreakUsesWholeWidth(t *testing.T) {
	// The ratio is touchX/width, not position relative to the pair, so
	// a pair parked near the left edge still resolves to MAX for
	// touches left of the widget midpoint.
	r := model.New(0, 100, testLogger)
	require.NoError(t, r.SetSelectedMax(10))
	require.NoError(t, r.SetSelectedMin(10))
	m := NewMetrics(160, 24) // pair at x=86, hit range [6, 166]

	require.Equal(t, ThumbMax, evalPressedThumb(r, m, 100, 220))
	require.Equal(t, ThumbMin, evalPressedThumb(r, m, 140, 220))
}
