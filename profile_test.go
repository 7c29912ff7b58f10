// SPDX-License-Identifier: MIT
package lcms2

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGBProfileBasics(t *testing.T) {
	p := SRGBProfile()
	defer p.Close()

	assert.Equal(t, SigRgbData, p.ColorSpace())
	assert.Equal(t, SigXYZData, p.PCS())
	assert.True(t, p.IsMatrixShaper())
	assert.Equal(t, 3, p.ColorSpace().Channels())
	assert.Equal(t, "sRGB built-in", p.Description())
}

func TestICCRoundTrip(t *testing.T) {
	p := SRGBProfile()
	defer p.Close()

	blob, err := p.ICC()
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	reread, err := ProfileFromBytes(blob)
	require.NoError(t, err)
	defer reread.Close()

	assert.Equal(t, p.ColorSpace(), reread.ColorSpace())
	assert.Equal(t, p.PCS(), reread.PCS())
	assert.Equal(t, p.Description(), reread.Description())
}

func TestProfileFromBytesCorrupt(t *testing.T) {
	_, err := ProfileFromBytes([]byte("definitely not an ICC profile"))
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = ProfileFromBytes(nil)
	assert.ErrorIs(t, err, ErrConstruction)

	p := SRGBProfile()
	defer p.Close()
	blob, err := p.ICC()
	require.NoError(t, err)

	_, err = ProfileFromBytes(blob[:len(blob)/2])
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestProfileFromFileMissing(t *testing.T) {
	_, err := ProfileFromFile(filepath.Join(t.TempDir(), "no-such-profile.icc"))
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestProfileSaveAndReload(t *testing.T) {
	p := SRGBProfile()
	defer p.Close()

	path := filepath.Join(t.TempDir(), "srgb.icc")
	require.NoError(t, p.SaveToFile(path))

	reread, err := ProfileFromFile(path)
	require.NoError(t, err)
	defer reread.Close()
	assert.Equal(t, SigRgbData, reread.ColorSpace())
}

func TestHeaderRenderingIntentRoundTrip(t *testing.T) {
	p := SRGBProfile()
	defer p.Close()

	p.SetHeaderRenderingIntent(IntentSaturation)
	assert.Equal(t, IntentSaturation, p.HeaderRenderingIntent())
	p.SetHeaderRenderingIntent(IntentPerceptual)
	assert.Equal(t, IntentPerceptual, p.HeaderRenderingIntent())
}

func TestGrayProfile(t *testing.T) {
	curve, err := NewToneCurve(2.2)
	require.NoError(t, err)
	defer curve.Close()

	p, err := GrayProfile(D50xyY(), curve)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, SigGrayData, p.ColorSpace())
	assert.Equal(t, 1, p.ColorSpace().Channels())
}

func TestLabProfiles(t *testing.T) {
	lab2, err := Lab2Profile(D50xyY())
	require.NoError(t, err)
	defer lab2.Close()
	assert.Equal(t, SigLabData, lab2.ColorSpace())
	assert.Less(t, lab2.Version(), 4.0)

	lab4, err := Lab4Profile(D50xyY())
	require.NoError(t, err)
	defer lab4.Close()
	assert.Equal(t, SigLabData, lab4.ColorSpace())
	assert.GreaterOrEqual(t, lab4.Version(), 4.0)
}

func TestNullProfile(t *testing.T) {
	p := NullProfile()
	defer p.Close()

	assert.Equal(t, SigGrayData, p.ColorSpace())
	assert.Equal(t, SigOutputClass, p.DeviceClass())
}

func TestMediaWhitePoint(t *testing.T) {
	p := SRGBProfile()
	defer p.Close()

	wp, err := p.MediaWhitePoint()
	require.NoError(t, err)
	d50 := D50XYZ()
	assert.InDelta(t, d50.X, wp.X, 1e-2)
	assert.InDelta(t, d50.Y, wp.Y, 1e-2)
	assert.InDelta(t, d50.Z, wp.Z, 1e-2)
}

func TestProfileCloseTwicePanics(t *testing.T) {
	p := SRGBProfile()
	p.Close()
	assert.Panics(t, func() { p.Close() })
}

func TestProfileUseAfterClosePanics(t *testing.T) {
	p := SRGBProfile()
	p.Close()
	assert.Panics(t, func() { p.ColorSpace() })
	assert.Panics(t, func() { _, _ = p.ICC() })
}

func TestSignatureStrings(t *testing.T) {
	assert.Equal(t, "RGB ", SigRgbData.String())
	assert.Equal(t, "GRAY", SigGrayData.String())
	assert.Equal(t, "mntr", SigDisplayClass.String())
}
