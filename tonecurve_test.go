// SPDX-License-Identifier: MIT
package lcms2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneCurveGamma(t *testing.T) {
	curve, err := NewToneCurve(2.2)
	require.NoError(t, err)
	defer curve.Close()

	assert.True(t, curve.IsMonotonic())
	assert.False(t, curve.IsDescending())
	assert.False(t, curve.IsMultisegment())

	got := float64(curve.EvalFloat(0.5))
	assert.InDelta(t, math.Pow(0.5, 2.2), got, 1e-3)

	// Endpoints are fixed.
	assert.InDelta(t, 0.0, float64(curve.EvalFloat(0)), 1e-5)
	assert.InDelta(t, 1.0, float64(curve.EvalFloat(1)), 1e-5)
}

func TestToneCurveLinear(t *testing.T) {
	curve, err := NewToneCurve(1.0)
	require.NoError(t, err)
	defer curve.Close()

	assert.True(t, curve.IsLinear())
	assert.InDelta(t, 0.25, float64(curve.EvalFloat(0.25)), 1e-3)
	assert.InDelta(t, float64(uint16(0x8000)), float64(curve.Eval16(0x8000)), 256)
}

func TestToneCurveEstimatedGamma(t *testing.T) {
	curve, err := NewToneCurve(2.2)
	require.NoError(t, err)
	defer curve.Close()

	g, ok := curve.EstimatedGamma(0.01)
	require.True(t, ok)
	assert.InDelta(t, 2.2, g, 0.01)
}

func TestToneCurveReversed(t *testing.T) {
	curve, err := NewToneCurve(2.0)
	require.NoError(t, err)
	defer curve.Close()

	inverse, err := curve.Reversed()
	require.NoError(t, err)
	defer inverse.Close()

	// inverse(curve(x)) is close to x.
	for _, x := range []float32{0.1, 0.25, 0.5, 0.75, 0.9} {
		roundTrip := inverse.EvalFloat(curve.EvalFloat(x))
		assert.InDelta(t, float64(x), float64(roundTrip), 0.01)
	}
}

func TestTabulatedToneCurve(t *testing.T) {
	curve, err := NewTabulatedToneCurve([]uint16{0, 0x4000, 0x8000, 0xC000, 0xFFFF})
	require.NoError(t, err)
	defer curve.Close()

	assert.True(t, curve.IsMonotonic())
	assert.Equal(t, uint16(0), curve.Eval16(0))
	assert.Equal(t, uint16(0xFFFF), curve.Eval16(0xFFFF))
}

func TestTabulatedDescending(t *testing.T) {
	curve, err := NewTabulatedToneCurve([]uint16{0xFFFF, 0x8000, 0})
	require.NoError(t, err)
	defer curve.Close()

	assert.True(t, curve.IsDescending())
}

func TestTabulatedFloat(t *testing.T) {
	curve, err := NewTabulatedToneCurveFloat([]float32{0, 0.5, 1})
	require.NoError(t, err)
	defer curve.Close()

	assert.InDelta(t, 0.5, float64(curve.EvalFloat(0.5)), 1e-3)
}

func TestEstimatedEntriesOutliveClose(t *testing.T) {
	curve, err := NewToneCurve(2.2)
	require.NoError(t, err)

	entries := curve.EstimatedEntries()
	require.NotEmpty(t, entries)
	curve.Close()
	// The copy stays usable after the curve is gone.
	assert.Equal(t, uint16(0), entries[0])
}

func TestToneCurveCloseTwicePanics(t *testing.T) {
	curve, err := NewToneCurve(1.8)
	require.NoError(t, err)
	curve.Close()
	assert.Panics(t, func() { curve.Close() })
	assert.Panics(t, func() { curve.Eval16(0) })
}
