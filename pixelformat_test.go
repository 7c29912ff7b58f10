// SPDX-License-Identifier: MIT
package lcms2

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

var presetCodes = map[string]struct {
	f    PixelFormat
	code uint32
}{
	"GRAY_8":         {GRAY_8, engine.TYPE_GRAY_8},
	"GRAY_8_REV":     {GRAY_8_REV, engine.TYPE_GRAY_8_REV},
	"GRAY_16":        {GRAY_16, engine.TYPE_GRAY_16},
	"GRAY_16_SE":     {GRAY_16_SE, engine.TYPE_GRAY_16_SE},
	"GRAYA_8":        {GRAYA_8, engine.TYPE_GRAYA_8},
	"GRAYA_8_PREMUL": {GRAYA_8_PREMUL, engine.TYPE_GRAYA_8_PREMUL},
	"GRAY_FLT":       {GRAY_FLT, engine.TYPE_GRAY_FLT},
	"GRAY_DBL":       {GRAY_DBL, engine.TYPE_GRAY_DBL},
	"RGB_8":          {RGB_8, engine.TYPE_RGB_8},
	"RGB_8_PLANAR":   {RGB_8_PLANAR, engine.TYPE_RGB_8_PLANAR},
	"BGR_8":          {BGR_8, engine.TYPE_BGR_8},
	"RGB_16":         {RGB_16, engine.TYPE_RGB_16},
	"RGB_16_SE":      {RGB_16_SE, engine.TYPE_RGB_16_SE},
	"RGBA_8":         {RGBA_8, engine.TYPE_RGBA_8},
	"RGBA_8_PREMUL":  {RGBA_8_PREMUL, engine.TYPE_RGBA_8_PREMUL},
	"ARGB_8":         {ARGB_8, engine.TYPE_ARGB_8},
	"RGB_FLT":        {RGB_FLT, engine.TYPE_RGB_FLT},
	"RGBA_FLT":       {RGBA_FLT, engine.TYPE_RGBA_FLT},
	"RGB_DBL":        {RGB_DBL, engine.TYPE_RGB_DBL},
	"CMYK_8":         {CMYK_8, engine.TYPE_CMYK_8},
	"CMYK_8_REV":     {CMYK_8_REV, engine.TYPE_CMYK_8_REV},
	"CMYK_16":        {CMYK_16, engine.TYPE_CMYK_16},
	"KYMC_8":         {KYMC_8, engine.TYPE_KYMC_8},
	"KCMY_8":         {KCMY_8, engine.TYPE_KCMY_8},
	"CMYK_FLT":       {CMYK_FLT, engine.TYPE_CMYK_FLT},
	"CMYK_DBL":       {CMYK_DBL, engine.TYPE_CMYK_DBL},
	"XYZ_16":         {XYZ_16, engine.TYPE_XYZ_16},
	"XYZ_DBL":        {XYZ_DBL, engine.TYPE_XYZ_DBL},
	"Lab_8":          {Lab_8, engine.TYPE_Lab_8},
	"Lab_16":         {Lab_16, engine.TYPE_Lab_16},
	"Lab_DBL":        {Lab_DBL, engine.TYPE_Lab_DBL},
	"LabV2_16":       {LabV2_16, engine.TYPE_LabV2_16},
}

func TestPresetCodesMatchEngine(t *testing.T) {
	for name, tc := range presetCodes {
		assert.Equalf(t, tc.code, tc.f.Encode(), "%s encodes to the wrong code", name)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for name, tc := range presetCodes {
		got, err := DecodePixelFormat(tc.f.Encode())
		require.NoErrorf(t, err, "%s failed to decode", name)
		if diff := cmp.Diff(tc.f, got); diff != "" {
			t.Errorf("%s did not round-trip (-want +got):\n%s", name, diff)
		}
	}
}

func TestDecodeRejectsReservedBits(t *testing.T) {
	for _, code := range []uint32{
		engine.TYPE_RGB_8 | 1<<15,
		engine.TYPE_RGB_8 | 1<<24,
		engine.TYPE_RGB_8 | 1<<31,
	} {
		_, err := DecodePixelFormat(code)
		assert.ErrorIsf(t, err, ErrInvalidFormat, "code %#08x should be rejected", code)
	}
}

func TestDecodeRejectsBadFields(t *testing.T) {
	cases := map[string]uint32{
		"3-byte samples":       engine.COLORSPACE_SH(engine.PT_RGB) | engine.CHANNELS_SH(3) | engine.BYTES_SH(3),
		"zero channels":        engine.COLORSPACE_SH(engine.PT_RGB) | engine.BYTES_SH(1),
		"reserved space tag":   engine.COLORSPACE_SH(1) | engine.CHANNELS_SH(3) | engine.BYTES_SH(1),
		"16-bit float":         engine.FLOAT_SH(1) | engine.COLORSPACE_SH(engine.PT_RGB) | engine.CHANNELS_SH(3) | engine.BYTES_SH(2),
		"8-byte integer":       engine.COLORSPACE_SH(engine.PT_RGB) | engine.CHANNELS_SH(3) | engine.BYTES_SH(0),
		"endian swap on 8-bit": engine.ENDIAN16_SH(1) | engine.COLORSPACE_SH(engine.PT_RGB) | engine.CHANNELS_SH(3) | engine.BYTES_SH(1),
		"premul without alpha": engine.PREMUL_SH(1) | engine.COLORSPACE_SH(engine.PT_RGB) | engine.CHANNELS_SH(3) | engine.BYTES_SH(1),
	}
	for name, code := range cases {
		_, err := DecodePixelFormat(code)
		assert.ErrorIsf(t, err, ErrInvalidFormat, "%s should be rejected", name)
	}
}

func TestBytesPerPixelMatchesEngine(t *testing.T) {
	for name, tc := range presetCodes {
		if tc.f.Planar {
			continue
		}
		assert.Equalf(t, engine.BytesPerPixel(tc.code), tc.f.BytesPerPixel(),
			"%s disagrees with the engine on pixel size", name)
	}
}

func TestBytesPerPixelDoubles(t *testing.T) {
	assert.Equal(t, 24, RGB_DBL.BytesPerPixel())
	assert.Equal(t, 8, GRAY_DBL.BytesPerPixel())
	assert.Equal(t, 4, RGBA_8.BytesPerPixel())
}

func TestValidateHandAssembled(t *testing.T) {
	f := PixelFormat{Space: SpaceRGB, Channels: 16, BytesPerSample: 1}
	assert.ErrorIs(t, f.Validate(), ErrInvalidFormat)

	f = PixelFormat{Space: SpaceRGB, Channels: 3, Extra: 8, BytesPerSample: 1}
	assert.ErrorIs(t, f.Validate(), ErrInvalidFormat)

	f = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 2}
	assert.NoError(t, f.Validate())
}
