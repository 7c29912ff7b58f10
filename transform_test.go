// SPDX-License-Identifier: MIT
package lcms2

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rgb8 struct{ R, G, B uint8 }

func newIdentityTransform(t *testing.T, flags Flags) *Transform {
	t.Helper()
	src := SRGBProfile()
	defer src.Close()
	dst := SRGBProfile()
	defer dst.Close()

	xform, err := NewTransform(src, RGB_8, dst, RGB_8, IntentPerceptual, flags)
	require.NoError(t, err)
	return xform
}

func TestIdentityRGB8(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	in := []rgb8{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{128, 128, 128},
		{17, 42, 250},
	}
	out := make([]rgb8, len(in))
	require.NoError(t, TransformPixels(xform, in, out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("identity transform altered pixels (-in +out):\n%s", diff)
	}
}

func TestTransformAccessors(t *testing.T) {
	xform := newIdentityTransform(t, FlagBlackPointCompensation)
	defer xform.Close()

	assert.Equal(t, RGB_8, xform.InputFormat())
	assert.Equal(t, RGB_8, xform.OutputFormat())
	assert.Equal(t, IntentPerceptual, xform.Intent())
	assert.True(t, xform.Flags().Has(FlagBlackPointCompensation))
	assert.Same(t, Global(), xform.Context())
}

func TestTransformSurvivesProfileClose(t *testing.T) {
	src := SRGBProfile()
	dst := SRGBProfile()
	xform, err := NewTransform(src, RGB_8, dst, RGB_8, IntentPerceptual, 0)
	require.NoError(t, err)
	defer xform.Close()

	// The transform snapshots the profiles at build time.
	src.Close()
	dst.Close()

	in := []rgb8{{10, 20, 30}}
	out := make([]rgb8, 1)
	require.NoError(t, TransformPixels(xform, in, out))
	assert.Equal(t, in[0], out[0])
}

func TestLayoutMismatchRejectedBeforeRun(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	// Wrong size: 4 bytes against a 3-byte pixel.
	type rgba struct{ R, G, B, A uint8 }
	err := TransformPixels(xform, []rgba{{}}, make([]rgb8, 1))
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	// Right size, wrong content: bool bit patterns are not engine-safe.
	type flagged struct {
		V bool
		P [2]uint8
	}
	err = TransformPixels(xform, []flagged{{}}, make([]rgb8, 1))
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	// Padding inside the element.
	type padded struct {
		A uint8
		B uint16
		C [8]uint8
	}
	big := newFloatTransform(t)
	defer big.Close()
	err = TransformPixels(big, []padded{{}}, make([][3]float32, 1))
	assert.ErrorIs(t, err, ErrLayoutMismatch)
}

func newFloatTransform(t *testing.T) *Transform {
	t.Helper()
	src := SRGBProfile()
	defer src.Close()
	dst := SRGBProfile()
	defer dst.Close()
	xform, err := NewTransform(src, RGB_FLT, dst, RGB_FLT, IntentPerceptual, 0)
	require.NoError(t, err)
	return xform
}

func TestPlanarNeedsByteAPI(t *testing.T) {
	src := SRGBProfile()
	defer src.Close()
	dst := SRGBProfile()
	defer dst.Close()

	xform, err := NewTransform(src, RGB_8_PLANAR, dst, RGB_8, IntentPerceptual, 0)
	require.NoError(t, err)
	defer xform.Close()

	err = TransformPixels(xform, []rgb8{{}}, make([]rgb8, 1))
	assert.ErrorIs(t, err, ErrLayoutMismatch)
}

func TestRawBytesDivisibility(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	err := xform.Transform(make([]byte, 7), make([]byte, 9))
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	err = xform.Transform(make([]byte, 6), make([]byte, 7))
	assert.ErrorIs(t, err, ErrLayoutMismatch)
}

func TestRawBytesConvertsMinPixels(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12} // 4 pixels
	dst := make([]byte, 6)                               // room for 2
	require.NoError(t, xform.Transform(src, dst))
	assert.Equal(t, src[:6], dst)
}

func TestTypedConvertsMinPixels(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	in := []rgb8{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	out := make([]rgb8, 2)
	require.NoError(t, TransformPixels(xform, in, out))
	assert.Equal(t, in[:2], out)
}

func TestTransformInPlace(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	buf := []rgb8{{9, 8, 7}, {1, 2, 3}}
	want := append([]rgb8(nil), buf...)
	require.NoError(t, TransformInPlace(xform, buf))
	assert.Equal(t, want, buf)
}

func TestEmptyBuffersAreNoOp(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	require.NoError(t, TransformPixels(xform, []rgb8{}, []rgb8{}))
	require.NoError(t, xform.Transform(nil, nil))
}

func TestSharedRequiresNoCache(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	defer xform.Close()

	_, err := xform.Shared()
	assert.ErrorIs(t, err, ErrConstruction)

	cached := newIdentityTransform(t, FlagNoCache)
	defer cached.Close()
	shared, err := cached.Shared()
	require.NoError(t, err)
	assert.True(t, shared.Flags().Has(FlagNoCache))
}

func TestSharedTransformConcurrentDeterminism(t *testing.T) {
	src := SRGBProfile()
	defer src.Close()
	dst := SRGBProfile()
	defer dst.Close()

	shared, err := NewSharedTransform(src, RGB_8, dst, RGB_8, IntentPerceptual, 0)
	require.NoError(t, err)
	defer shared.Close()

	in := make([]rgb8, 1024)
	for i := range in {
		in[i] = rgb8{uint8(i), uint8(i >> 2), uint8(i >> 4)}
	}
	want := make([]rgb8, len(in))
	require.NoError(t, TransformPixels(shared, in, want))

	const goroutines = 8
	results := make([][]rgb8, goroutines)
	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g] = make([]rgb8, len(in))
			errs[g] = TransformPixels(shared, in, results[g])
		}(g)
	}
	wg.Wait()

	for g := 0; g < goroutines; g++ {
		require.NoError(t, errs[g])
		assert.Equalf(t, want, results[g], "goroutine %d diverged", g)
	}
}

func TestMultiprofileTransform(t *testing.T) {
	src := SRGBProfile()
	defer src.Close()
	dst := SRGBProfile()
	defer dst.Close()

	xform, err := NewMultiprofileTransform([]*Profile{src, dst}, RGB_8, RGB_8, IntentPerceptual, 0)
	require.NoError(t, err)
	defer xform.Close()

	in := []rgb8{{200, 100, 50}}
	out := make([]rgb8, 1)
	require.NoError(t, TransformPixels(xform, in, out))
	assert.Equal(t, in[0], out[0])
}

func TestMultiprofileNeedsTwoProfiles(t *testing.T) {
	src := SRGBProfile()
	defer src.Close()

	_, err := NewMultiprofileTransform([]*Profile{src}, RGB_8, RGB_8, IntentPerceptual, 0)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestInvalidFormatRejectedAtConstruction(t *testing.T) {
	src := SRGBProfile()
	defer src.Close()
	dst := SRGBProfile()
	defer dst.Close()

	bad := PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 3}
	_, err := NewTransform(src, bad, dst, RGB_8, IntentPerceptual, 0)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTransform(src, RGB_8, dst, bad, IntentPerceptual, 0)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTransformCloseTwicePanics(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	xform.Close()
	assert.Panics(t, func() { xform.Close() })
}

func TestCloseAfterUseReleasesEngineState(t *testing.T) {
	xform := newIdentityTransform(t, 0)

	in := []rgb8{{12, 34, 56}}
	out := make([]rgb8, 1)
	require.NoError(t, TransformPixels(xform, in, out))

	// Close frees the engine pipelines eagerly; it must not panic on a
	// transform that has actually run.
	assert.NotPanics(t, xform.Close)
}

func TestSharedFlagFixedAtConstruction(t *testing.T) {
	cached := newIdentityTransform(t, FlagNoCache)
	defer cached.Close()

	in := make([]rgb8, 256)
	for i := range in {
		in[i] = rgb8{uint8(i), uint8(255 - i), uint8(i / 2)}
	}
	want := make([]rgb8, len(in))
	require.NoError(t, TransformPixels(cached, in, want))

	// Shared only wraps; it must not write any transform state, so it is
	// safe to call while other goroutines are mid-conversion.
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]rgb8, len(in))
			if err := TransformPixels(cached, in, out); err != nil {
				t.Error(err)
			}
		}()
	}
	shared, err := cached.Shared()
	wg.Wait()
	require.NoError(t, err)

	out := make([]rgb8, len(in))
	require.NoError(t, TransformPixels(shared, in, out))
	assert.Equal(t, want, out)
}

func TestTransformUseAfterClosePanics(t *testing.T) {
	xform := newIdentityTransform(t, 0)
	xform.Close()
	assert.Panics(t, func() {
		_ = TransformPixels(xform, []rgb8{{}}, make([]rgb8, 1))
	})
}
