// SPDX-License-Identifier: MIT
package lcms2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestD50(t *testing.T) {
	wp := D50xyY()
	assert.InDelta(t, 0.3457, wp.X, 1e-3)
	assert.InDelta(t, 0.3585, wp.Y, 1e-3)
	assert.InDelta(t, 1.0, wp.Yb, 1e-9)

	xyz := D50XYZ()
	assert.InDelta(t, 0.9642, xyz.X, 1e-3)
	assert.InDelta(t, 1.0, xyz.Y, 1e-9)
	assert.InDelta(t, 0.8249, xyz.Z, 1e-3)
}

func TestWhitePointFromTemp(t *testing.T) {
	// 6504K is the D65 correlated color temperature.
	wp, err := WhitePointFromTemp(6504)
	require.NoError(t, err)
	assert.InDelta(t, 0.3127, wp.X, 5e-3)
	assert.InDelta(t, 0.3290, wp.Y, 5e-3)

	back, err := TempFromWhitePoint(wp)
	require.NoError(t, err)
	assert.InDelta(t, 6504, back, 100)
}

func TestWhitePointFromTempOutOfRange(t *testing.T) {
	_, err := WhitePointFromTemp(100)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = WhitePointFromTemp(1e6)
	assert.ErrorIs(t, err, ErrConstruction)
}
