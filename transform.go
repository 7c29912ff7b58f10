// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

// Transform converts pixels between the color spaces of two or more
// profiles. It snapshots everything it needs from the profiles at
// construction time, so the profiles may be closed while the transform is
// still in use.
//
// A Transform keeps a one-pixel result cache and serializes calls with an
// internal mutex; it is safe for concurrent use but calls do not overlap.
// Transforms built with FlagNoCache carry no per-call state and run
// without the mutex; for a lock-free typed wrapper build a
// SharedTransform.
//
// A Transform must be closed exactly once; use after Close panics.
type Transform struct {
	raw    engine.CmsHTRANSFORM
	ctx    *Context
	in     PixelFormat
	out    PixelFormat
	intent Intent
	flags  Flags
	shared bool
	mu     sync.Mutex
	closed atomic.Bool
}

// SharedTransform is a Transform built with FlagNoCache: it has no mutable
// per-call state, so any number of goroutines may run it simultaneously
// without locking.
type SharedTransform struct {
	t *Transform
}

// Transformer is implemented by *Transform and *SharedTransform; the
// generic execution functions accept either.
type Transformer interface {
	transform() *Transform
}

func (t *Transform) transform() *Transform       { return t }
func (s *SharedTransform) transform() *Transform { return s.t }

// NewTransform builds a transform between two profiles in the global
// context.
func NewTransform(input *Profile, inputFormat PixelFormat, output *Profile, outputFormat PixelFormat, intent Intent, flags Flags) (*Transform, error) {
	return Global().NewTransform(input, inputFormat, output, outputFormat, intent, flags)
}

// NewTransform builds a transform between two profiles. The formats are
// validated up front; profile pairs with no conversion path return an
// error wrapping ErrConstruction.
func (c *Context) NewTransform(input *Profile, inputFormat PixelFormat, output *Profile, outputFormat PixelFormat, intent Intent, flags Flags) (*Transform, error) {
	c.check()
	if err := checkFormats(inputFormat, outputFormat); err != nil {
		return nil, err
	}
	raw := engine.CreateTransformTHR(c.mm, c.raw,
		input.handle(), inputFormat.Encode(),
		output.handle(), outputFormat.Encode(),
		uint32(intent), uint32(flags))
	if raw == nil {
		return nil, fmt.Errorf("%w: no transform from %v to %v", ErrConstruction, input.ColorSpace(), output.ColorSpace())
	}
	return c.wrap(raw, inputFormat, outputFormat, intent, flags), nil
}

// NewProofingTransform builds a transform that renders through a proofing
// profile, simulating the proofing device on the output device, in the
// global context.
func NewProofingTransform(input *Profile, inputFormat PixelFormat, output *Profile, outputFormat PixelFormat, proofing *Profile, intent, proofingIntent Intent, flags Flags) (*Transform, error) {
	return Global().NewProofingTransform(input, inputFormat, output, outputFormat, proofing, intent, proofingIntent, flags)
}

// NewProofingTransform builds a proofing transform. FlagSoftProofing
// enables the simulation; FlagGamutCheck paints out-of-gamut pixels with
// the context alarm codes.
func (c *Context) NewProofingTransform(input *Profile, inputFormat PixelFormat, output *Profile, outputFormat PixelFormat, proofing *Profile, intent, proofingIntent Intent, flags Flags) (*Transform, error) {
	c.check()
	if err := checkFormats(inputFormat, outputFormat); err != nil {
		return nil, err
	}
	raw := engine.CreateProofingTransformTHR(c.mm, c.raw,
		input.handle(), inputFormat.Encode(),
		output.handle(), outputFormat.Encode(),
		proofing.handle(), uint32(intent), uint32(proofingIntent), uint32(flags))
	if raw == nil {
		return nil, fmt.Errorf("%w: proofing transform", ErrConstruction)
	}
	return c.wrap(raw, inputFormat, outputFormat, intent, flags), nil
}

// NewMultiprofileTransform chains any number of profiles into a single
// transform in the global context.
func NewMultiprofileTransform(profiles []*Profile, inputFormat, outputFormat PixelFormat, intent Intent, flags Flags) (*Transform, error) {
	return Global().NewMultiprofileTransform(profiles, inputFormat, outputFormat, intent, flags)
}

// NewMultiprofileTransform chains profiles in order: the first is the
// input space, the last the output space, abstract profiles in between.
func (c *Context) NewMultiprofileTransform(profiles []*Profile, inputFormat, outputFormat PixelFormat, intent Intent, flags Flags) (*Transform, error) {
	c.check()
	if len(profiles) < 2 {
		return nil, fmt.Errorf("%w: a transform chain needs at least 2 profiles, got %d", ErrConstruction, len(profiles))
	}
	if err := checkFormats(inputFormat, outputFormat); err != nil {
		return nil, err
	}
	handles := make([]engine.CmsHPROFILE, len(profiles))
	for i, p := range profiles {
		handles[i] = p.handle()
	}
	raw := engine.CreateMultiprofileTransformTHR(c.mm, c.raw,
		handles, inputFormat.Encode(), outputFormat.Encode(),
		uint32(intent), uint32(flags))
	if raw == nil {
		return nil, fmt.Errorf("%w: %d-profile transform chain", ErrConstruction, len(profiles))
	}
	return c.wrap(raw, inputFormat, outputFormat, intent, flags), nil
}

// NewSharedTransform builds a concurrency-safe transform in the global
// context. FlagNoCache is set implicitly.
func NewSharedTransform(input *Profile, inputFormat PixelFormat, output *Profile, outputFormat PixelFormat, intent Intent, flags Flags) (*SharedTransform, error) {
	return Global().NewSharedTransform(input, inputFormat, output, outputFormat, intent, flags)
}

// NewSharedTransform builds a concurrency-safe transform in this context.
func (c *Context) NewSharedTransform(input *Profile, inputFormat PixelFormat, output *Profile, outputFormat PixelFormat, intent Intent, flags Flags) (*SharedTransform, error) {
	t, err := c.NewTransform(input, inputFormat, output, outputFormat, intent, flags|FlagNoCache)
	if err != nil {
		return nil, err
	}
	return t.Shared()
}

// Shared wraps the transform for lock-free concurrent use. It requires
// that the transform was built with FlagNoCache; otherwise concurrent
// calls could corrupt the pixel cache, and an error is returned.
func (t *Transform) Shared() (*SharedTransform, error) {
	if !t.shared {
		return nil, fmt.Errorf("%w: shared use requires FlagNoCache at construction", ErrConstruction)
	}
	return &SharedTransform{t: t}, nil
}

func (c *Context) wrap(raw engine.CmsHTRANSFORM, in, out PixelFormat, intent Intent, flags Flags) *Transform {
	// shared is fixed here so later reads never race: FlagNoCache removes
	// the per-call pixel cache, the only mutable state the mutex guards.
	return &Transform{raw: raw, ctx: c, in: in, out: out, intent: intent, flags: flags,
		shared: flags.Has(FlagNoCache)}
}

func checkFormats(in, out PixelFormat) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("input %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("output %w", err)
	}
	return nil
}

// InputFormat returns the pixel format of the source side.
func (t *Transform) InputFormat() PixelFormat { return t.in }

// OutputFormat returns the pixel format of the destination side.
func (t *Transform) OutputFormat() PixelFormat { return t.out }

// Intent returns the rendering intent the transform was built with.
func (t *Transform) Intent() Intent { return t.intent }

// Flags returns the flags the transform was built with.
func (t *Transform) Flags() Flags { return t.flags }

// Context returns the context the transform was created in.
func (t *Transform) Context() *Context { return t.ctx }

// Close releases the transform. Closing twice panics.
func (t *Transform) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		panic("lcms2: transform closed twice")
	}
	engine.CmsDeleteTransform(t.raw)
	t.raw = nil
}

// Transform converts raw interleaved bytes. Both lengths must be whole
// multiples of the respective pixel footprint; the number of pixels
// converted is the smaller of the two sides. This is the only execution
// path for planar formats.
func (t *Transform) Transform(src, dst []byte) error {
	return t.transformBytes(src, dst)
}

func (t *Transform) transformBytes(src, dst []byte) error {
	inBPP := t.in.BytesPerPixel()
	outBPP := t.out.BytesPerPixel()
	if len(src)%inBPP != 0 {
		return fmt.Errorf("%w: source length %d is not a multiple of the %d-byte input pixel", ErrLayoutMismatch, len(src), inBPP)
	}
	if len(dst)%outBPP != 0 {
		return fmt.Errorf("%w: destination length %d is not a multiple of the %d-byte output pixel", ErrLayoutMismatch, len(dst), outBPP)
	}
	t.run(src, dst, min(len(src)/inBPP, len(dst)/outBPP))
	return nil
}

// run executes the engine transform over n pixels. Every call gets its own
// scratch frame, so shared transforms never contend on working buffers.
func (t *Transform) run(src, dst []byte, n int) {
	if t.closed.Load() {
		panic("lcms2: use of closed transform")
	}
	t.ctx.check()
	if n == 0 {
		return
	}
	if !t.shared {
		t.mu.Lock()
		defer t.mu.Unlock()
	}
	frame := t.ctx.mm.NewFrame()
	defer frame.Close()
	engine.CmsDoTransform(frame, t.raw, src, dst, uint32(n))
}

// InputFormat returns the pixel format of the source side.
func (s *SharedTransform) InputFormat() PixelFormat { return s.t.in }

// OutputFormat returns the pixel format of the destination side.
func (s *SharedTransform) OutputFormat() PixelFormat { return s.t.out }

// Intent returns the rendering intent the transform was built with.
func (s *SharedTransform) Intent() Intent { return s.t.intent }

// Flags returns the flags the transform was built with.
func (s *SharedTransform) Flags() Flags { return s.t.flags }

// Context returns the context the transform was created in.
func (s *SharedTransform) Context() *Context { return s.t.ctx }

// Close releases the transform. Concurrent calls must have finished.
func (s *SharedTransform) Close() { s.t.Close() }

// Transform converts raw interleaved bytes; see Transform.Transform.
func (s *SharedTransform) Transform(src, dst []byte) error {
	return s.t.transformBytes(src, dst)
}

// TransformPixels converts src into dst, where the element types I and O
// must match the byte footprint of the transform's input and output
// formats exactly. The layout of each type is checked once and cached;
// mismatches return an error wrapping ErrLayoutMismatch before any pixel
// is touched. The number of pixels converted is min(len(src), len(dst)).
func TransformPixels[I, O any](tr Transformer, src []I, dst []O) error {
	t := tr.transform()
	if err := checkLayout(reflect.TypeFor[I](), t.in); err != nil {
		return fmt.Errorf("source buffer: %w", err)
	}
	if err := checkLayout(reflect.TypeFor[O](), t.out); err != nil {
		return fmt.Errorf("destination buffer: %w", err)
	}
	t.run(bytesView(src), bytesView(dst), min(len(src), len(dst)))
	return nil
}

// TransformInPlace converts pixels in a single buffer, overwriting each
// pixel with its converted value. The element type must match both the
// input and the output format of the transform.
func TransformInPlace[P any](tr Transformer, pixels []P) error {
	t := tr.transform()
	rt := reflect.TypeFor[P]()
	if err := checkLayout(rt, t.in); err != nil {
		return fmt.Errorf("buffer: %w", err)
	}
	if err := checkLayout(rt, t.out); err != nil {
		return fmt.Errorf("buffer: %w", err)
	}
	b := bytesView(pixels)
	t.run(b, b, len(pixels))
	return nil
}
