// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"
	"sync/atomic"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

// ToneCurve is a one-dimensional transfer function: a pure gamma, a
// sampled table, or a parametric segment chain read from a profile. Curves
// are used to build gray and RGB profiles and can be evaluated directly.
//
// A ToneCurve must be closed when no longer needed; use after Close
// panics.
type ToneCurve struct {
	raw    *engine.CmsToneCurve
	ctx    *Context
	closed atomic.Bool
}

// NewToneCurve builds a pure gamma curve y = x^gamma in the global
// context. Gamma must be positive.
func NewToneCurve(gamma float64) (*ToneCurve, error) {
	return Global().NewToneCurve(gamma)
}

// NewToneCurve builds a pure gamma curve in this context.
func (c *Context) NewToneCurve(gamma float64) (*ToneCurve, error) {
	c.check()
	raw := engine.CmsBuildGamma(c.mm, c.raw, gamma)
	if raw == nil {
		return nil, fmt.Errorf("%w: gamma curve %g", ErrConstruction, gamma)
	}
	return &ToneCurve{raw: raw, ctx: c}, nil
}

// NewTabulatedToneCurve builds a curve from uniformly spaced 16-bit
// samples in the global context.
func NewTabulatedToneCurve(values []uint16) (*ToneCurve, error) {
	return Global().NewTabulatedToneCurve(values)
}

// NewTabulatedToneCurve builds a curve from uniformly spaced 16-bit
// samples. At least two samples are required.
func (c *Context) NewTabulatedToneCurve(values []uint16) (*ToneCurve, error) {
	c.check()
	raw := engine.BuildTabulatedToneCurve16(c.mm, c.raw, values)
	if raw == nil {
		return nil, fmt.Errorf("%w: tabulated curve with %d entries", ErrConstruction, len(values))
	}
	return &ToneCurve{raw: raw, ctx: c}, nil
}

// NewTabulatedToneCurveFloat builds a curve from uniformly spaced float
// samples in the global context.
func NewTabulatedToneCurveFloat(values []float32) (*ToneCurve, error) {
	return Global().NewTabulatedToneCurveFloat(values)
}

// NewTabulatedToneCurveFloat builds a curve from uniformly spaced float
// samples in [0, 1].
func (c *Context) NewTabulatedToneCurveFloat(values []float32) (*ToneCurve, error) {
	c.check()
	raw := engine.BuildTabulatedToneCurveFloat(c.mm, c.raw, values)
	if raw == nil {
		return nil, fmt.Errorf("%w: tabulated curve with %d entries", ErrConstruction, len(values))
	}
	return &ToneCurve{raw: raw, ctx: c}, nil
}

func (t *ToneCurve) handle() *engine.CmsToneCurve {
	if t.closed.Load() {
		panic("lcms2: use of closed tone curve")
	}
	return t.raw
}

// Close releases the curve. Closing twice panics.
func (t *ToneCurve) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		panic("lcms2: tone curve closed twice")
	}
	engine.CmsFreeToneCurve(t.raw)
}

// Eval16 evaluates the curve on a 16-bit encoded value.
func (t *ToneCurve) Eval16(v uint16) uint16 {
	return engine.EvalToneCurve16(t.ctx.mm, t.handle(), v)
}

// EvalFloat evaluates the curve on a normalized value in [0, 1].
func (t *ToneCurve) EvalFloat(v float32) float32 {
	return engine.EvalToneCurveFloat(t.ctx.mm, t.handle(), v)
}

// Reversed computes the inverse curve, sampled with a default resolution.
// Curves that are not invertible yield a best-effort approximation.
func (t *ToneCurve) Reversed() (*ToneCurve, error) {
	raw := engine.ReverseToneCurve(t.ctx.mm, t.handle())
	if raw == nil {
		return nil, fmt.Errorf("%w: curve reversal", ErrConstruction)
	}
	return &ToneCurve{raw: raw, ctx: t.ctx}, nil
}

// ReversedWithSamples computes the inverse curve sampled at the given
// number of points.
func (t *ToneCurve) ReversedWithSamples(samples int) (*ToneCurve, error) {
	raw := engine.ReverseToneCurveEx(t.ctx.mm, uint32(samples), t.handle())
	if raw == nil {
		return nil, fmt.Errorf("%w: curve reversal with %d samples", ErrConstruction, samples)
	}
	return &ToneCurve{raw: raw, ctx: t.ctx}, nil
}

// EstimatedGamma fits a pure gamma to the curve. It returns false when the
// fit error exceeds precision (0.01 is a reasonable precision).
func (t *ToneCurve) EstimatedGamma(precision float64) (float64, bool) {
	g := engine.EstimateGamma(t.ctx.mm, t.handle(), precision)
	return g, g > 0
}

// IsLinear reports whether the curve is the identity within tolerance.
func (t *ToneCurve) IsLinear() bool { return engine.IsToneCurveLinear(t.handle()) }

// IsMonotonic reports whether the curve never reverses direction.
func (t *ToneCurve) IsMonotonic() bool { return engine.IsToneCurveMonotonic(t.handle()) }

// IsDescending reports whether the curve decreases from 0 to 1.
func (t *ToneCurve) IsDescending() bool { return engine.IsToneCurveDescending(t.handle()) }

// IsMultisegment reports whether the curve is defined piecewise.
func (t *ToneCurve) IsMultisegment() bool { return engine.IsToneCurveMultisegment(t.handle()) }

// EstimatedEntries returns the 16-bit table the engine keeps for the
// curve. The returned slice is a copy and stays valid after Close.
func (t *ToneCurve) EstimatedEntries() []uint16 {
	table := engine.ToneCurveEstimatedTable(t.handle())
	out := make([]uint16, len(table))
	copy(out, table)
	return out
}
