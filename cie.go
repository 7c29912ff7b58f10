// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

// CIExyY is a chromaticity plus luminance. X and Y are the chromaticity
// coordinates x and y; Yb is the luminance Y.
type CIExyY struct {
	X, Y, Yb float64
}

// CIEXYZ is a tristimulus value in the CIE 1931 space.
type CIEXYZ struct {
	X, Y, Z float64
}

// CIExyYTriple carries the chromaticities of the three primaries of an RGB
// space.
type CIExyYTriple struct {
	Red, Green, Blue CIExyY
}

// CIELab is a CIE L*a*b* color.
type CIELab struct {
	L, A, B float64
}

// D50xyY returns the ICC profile connection space illuminant as xyY.
func D50xyY() CIExyY {
	return fromEngineXyY(engine.D50xyY())
}

// D50XYZ returns the ICC profile connection space illuminant as XYZ.
func D50XYZ() CIEXYZ {
	x, y, z := engine.D50XYZ()
	return CIEXYZ{X: x, Y: y, Z: z}
}

// WhitePointFromTemp computes the chromaticity of a black body radiator at
// the given temperature in Kelvin. Temperatures outside roughly 4000K to
// 25000K are not representable and return an error.
func WhitePointFromTemp(tempK float64) (CIExyY, error) {
	var wp engine.CmsCIExyY
	if !engine.WhitePointFromTemp(&wp, tempK) {
		return CIExyY{}, fmt.Errorf("%w: no white point for %gK", ErrConstruction, tempK)
	}
	return fromEngineXyY(wp), nil
}

// TempFromWhitePoint computes the correlated color temperature of a white
// point, the inverse of WhitePointFromTemp.
func TempFromWhitePoint(wp CIExyY) (float64, error) {
	var tempK float64
	e := toEngineXyY(wp)
	if !engine.TempFromWhitePoint(&tempK, &e) {
		return 0, fmt.Errorf("%w: white point out of the black body locus", ErrConstruction)
	}
	return tempK, nil
}

func toEngineXyY(v CIExyY) engine.CmsCIExyY {
	return engine.CmsCIExyY{X_small: v.X, Y_small: v.Y, Y_large: v.Yb}
}

func fromEngineXyY(v engine.CmsCIExyY) CIExyY {
	return CIExyY{X: v.X_small, Y: v.Y_small, Yb: v.Y_large}
}

func toEngineTriple(t CIExyYTriple) engine.CmsCIExyYTRIPLE {
	return engine.CmsCIExyYTRIPLE{
		Red:   toEngineXyY(t.Red),
		Green: toEngineXyY(t.Green),
		Blue:  toEngineXyY(t.Blue),
	}
}
