// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

// ColorSpace is the color-space tag carried inside a pixel format code.
// It is a format-level tag, not an ICC signature; see ColorSpaceSignature
// for the profile-header form.
type ColorSpace uint32

const (
	SpaceAny   ColorSpace = engine.PT_ANY
	SpaceGray  ColorSpace = engine.PT_GRAY
	SpaceRGB   ColorSpace = engine.PT_RGB
	SpaceCMY   ColorSpace = engine.PT_CMY
	SpaceCMYK  ColorSpace = engine.PT_CMYK
	SpaceYCbCr ColorSpace = engine.PT_YCbCr
	SpaceYUV   ColorSpace = engine.PT_YUV
	SpaceXYZ   ColorSpace = engine.PT_XYZ
	SpaceLab   ColorSpace = engine.PT_Lab
	SpaceYUVK  ColorSpace = engine.PT_YUVK
	SpaceHSV   ColorSpace = engine.PT_HSV
	SpaceHLS   ColorSpace = engine.PT_HLS
	SpaceYxy   ColorSpace = engine.PT_Yxy
	SpaceMCH1  ColorSpace = engine.PT_MCH1
	SpaceMCH15 ColorSpace = engine.PT_MCH15
	SpaceLabV2 ColorSpace = engine.PT_LabV2
)

// PixelFormat describes the memory layout of one pixel as the engine's
// packed format code understands it. The zero value is not a valid format;
// start from a preset or from DecodePixelFormat.
type PixelFormat struct {
	// Space is the color-space tag of the buffer.
	Space ColorSpace
	// Channels is the number of color channels, 1 to 15.
	Channels uint32
	// Extra is the number of non-color channels (alpha, spot), 0 to 7.
	Extra uint32
	// BytesPerSample is the storage size of one channel: 1, 2 or 4.
	// Zero is the encoding for 8-byte float64 samples.
	BytesPerSample uint32

	// Float marks floating point samples (float32, or float64 when
	// BytesPerSample is 0).
	Float bool
	// Optimized marks a format the engine pre-optimized; user code
	// normally never sets it.
	Optimized bool
	// SwapFirst moves the last channel to the front (ARGB, KCMY).
	SwapFirst bool
	// DoSwap reverses channel order (BGR, KYMC).
	DoSwap bool
	// BigEndian16 marks 16-bit samples stored big-endian.
	BigEndian16 bool
	// Planar lays the buffer out channel-plane by channel-plane instead
	// of interleaved. Planar buffers only pass through the raw byte API.
	Planar bool
	// MinIsWhite inverts the encoding so 0 is white (Flavor bit).
	MinIsWhite bool
	// Premul marks alpha-premultiplied color channels. Requires Extra>0.
	Premul bool
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Encode packs the format into the engine's integer code. Encode does not
// validate; formats assembled by hand should be checked with Validate
// before use (the transform constructors do this for you).
func (f PixelFormat) Encode() uint32 {
	return engine.PREMUL_SH(boolBit(f.Premul)) |
		engine.FLOAT_SH(boolBit(f.Float)) |
		engine.OPTIMIZED_SH(boolBit(f.Optimized)) |
		engine.COLORSPACE_SH(uint32(f.Space)) |
		engine.SWAPFIRST_SH(boolBit(f.SwapFirst)) |
		engine.FLAVOR_SH(boolBit(f.MinIsWhite)) |
		engine.PLANAR_SH(boolBit(f.Planar)) |
		engine.ENDIAN16_SH(boolBit(f.BigEndian16)) |
		engine.DOSWAP_SH(boolBit(f.DoSwap)) |
		engine.EXTRA_SH(f.Extra) |
		engine.CHANNELS_SH(f.Channels) |
		engine.BYTES_SH(f.BytesPerSample)
}

// formatCodeMask covers every bit the format encoding defines. Bit 15 and
// bits above the premultiplied flag are reserved.
const formatCodeMask = 0x00FF7FFF

// DecodePixelFormat unpacks an engine format code. Codes with reserved
// bits set, an unknown color-space tag or a field combination the engine
// rejects return an error wrapping ErrInvalidFormat; the decoding never
// silently drops bits.
func DecodePixelFormat(code uint32) (PixelFormat, error) {
	if code&^uint32(formatCodeMask) != 0 {
		return PixelFormat{}, fmt.Errorf("%w: reserved bits set in %#08x", ErrInvalidFormat, code)
	}
	f := PixelFormat{
		Space:          ColorSpace(engine.T_COLORSPACE(code)),
		Channels:       engine.T_CHANNELS(code),
		Extra:          engine.T_EXTRA(code),
		BytesPerSample: engine.T_BYTES(code),
		Float:          engine.T_FLOAT(code) != 0,
		Optimized:      engine.T_OPTIMIZED(code) != 0,
		SwapFirst:      engine.T_SWAPFIRST(code) != 0,
		DoSwap:         engine.T_DOSWAP(code) != 0,
		BigEndian16:    engine.T_ENDIAN16(code) != 0,
		Planar:         engine.T_PLANAR(code) != 0,
		MinIsWhite:     engine.T_FLAVOR(code) != 0,
		Premul:         engine.T_PREMUL(code) != 0,
	}
	if err := f.Validate(); err != nil {
		return PixelFormat{}, err
	}
	return f, nil
}

// Validate reports whether the format describes a layout the engine can
// address. The returned error wraps ErrInvalidFormat.
func (f PixelFormat) Validate() error {
	switch {
	case f.Space != SpaceAny && (f.Space < SpaceGray || f.Space > SpaceLabV2):
		return fmt.Errorf("%w: unknown color space tag %d", ErrInvalidFormat, f.Space)
	case f.Channels < 1 || f.Channels > 15:
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, f.Channels)
	case f.Extra > 7:
		return fmt.Errorf("%w: %d extra channels", ErrInvalidFormat, f.Extra)
	case f.BytesPerSample != 0 && f.BytesPerSample != 1 && f.BytesPerSample != 2 && f.BytesPerSample != 4:
		return fmt.Errorf("%w: %d bytes per sample", ErrInvalidFormat, f.BytesPerSample)
	case f.Float && f.BytesPerSample != 4 && f.BytesPerSample != 0:
		return fmt.Errorf("%w: float samples must be 4 or 8 bytes", ErrInvalidFormat)
	case !f.Float && f.BytesPerSample == 0:
		return fmt.Errorf("%w: 8-byte samples are float only", ErrInvalidFormat)
	case f.BigEndian16 && f.BytesPerSample != 2:
		return fmt.Errorf("%w: endian swap needs 16-bit samples", ErrInvalidFormat)
	case f.Premul && f.Extra == 0:
		return fmt.Errorf("%w: premultiplied format without alpha channel", ErrInvalidFormat)
	}
	return nil
}

// SampleSize returns the storage size of one channel in bytes.
func (f PixelFormat) SampleSize() int {
	if f.BytesPerSample == 0 {
		return 8
	}
	return int(f.BytesPerSample)
}

// BytesPerPixel returns the total footprint of one pixel: color plus extra
// channels times sample size. For planar formats this is the per-pixel
// total across all planes.
func (f PixelFormat) BytesPerPixel() int {
	return int(f.Channels+f.Extra) * f.SampleSize()
}

func (f PixelFormat) String() string {
	return fmt.Sprintf("format(%#08x)", f.Encode())
}

// Preset formats, pixel-compatible with the engine's TYPE_ constants of the
// same name.
var (
	GRAY_8         = PixelFormat{Space: SpaceGray, Channels: 1, BytesPerSample: 1}
	GRAY_8_REV     = PixelFormat{Space: SpaceGray, Channels: 1, BytesPerSample: 1, MinIsWhite: true}
	GRAY_16        = PixelFormat{Space: SpaceGray, Channels: 1, BytesPerSample: 2}
	GRAY_16_SE     = PixelFormat{Space: SpaceGray, Channels: 1, BytesPerSample: 2, BigEndian16: true}
	GRAYA_8        = PixelFormat{Space: SpaceGray, Channels: 1, Extra: 1, BytesPerSample: 1}
	GRAYA_8_PREMUL = PixelFormat{Space: SpaceGray, Channels: 1, Extra: 1, BytesPerSample: 1, Premul: true}
	GRAY_FLT       = PixelFormat{Space: SpaceGray, Channels: 1, BytesPerSample: 4, Float: true}
	GRAY_DBL       = PixelFormat{Space: SpaceGray, Channels: 1, Float: true}

	RGB_8          = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 1}
	RGB_8_PLANAR   = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 1, Planar: true}
	BGR_8          = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 1, DoSwap: true}
	RGB_16         = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 2}
	RGB_16_SE      = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 2, BigEndian16: true}
	RGBA_8         = PixelFormat{Space: SpaceRGB, Channels: 3, Extra: 1, BytesPerSample: 1}
	RGBA_8_PREMUL  = PixelFormat{Space: SpaceRGB, Channels: 3, Extra: 1, BytesPerSample: 1, Premul: true}
	ARGB_8         = PixelFormat{Space: SpaceRGB, Channels: 3, Extra: 1, BytesPerSample: 1, SwapFirst: true}
	RGB_FLT        = PixelFormat{Space: SpaceRGB, Channels: 3, BytesPerSample: 4, Float: true}
	RGBA_FLT       = PixelFormat{Space: SpaceRGB, Channels: 3, Extra: 1, BytesPerSample: 4, Float: true}
	RGB_DBL        = PixelFormat{Space: SpaceRGB, Channels: 3, Float: true}

	CMYK_8     = PixelFormat{Space: SpaceCMYK, Channels: 4, BytesPerSample: 1}
	CMYK_8_REV = PixelFormat{Space: SpaceCMYK, Channels: 4, BytesPerSample: 1, MinIsWhite: true}
	CMYK_16    = PixelFormat{Space: SpaceCMYK, Channels: 4, BytesPerSample: 2}
	KYMC_8     = PixelFormat{Space: SpaceCMYK, Channels: 4, BytesPerSample: 1, DoSwap: true}
	KCMY_8     = PixelFormat{Space: SpaceCMYK, Channels: 4, BytesPerSample: 1, SwapFirst: true}
	CMYK_FLT   = PixelFormat{Space: SpaceCMYK, Channels: 4, BytesPerSample: 4, Float: true}
	CMYK_DBL   = PixelFormat{Space: SpaceCMYK, Channels: 4, Float: true}

	XYZ_16   = PixelFormat{Space: SpaceXYZ, Channels: 3, BytesPerSample: 2}
	XYZ_DBL  = PixelFormat{Space: SpaceXYZ, Channels: 3, Float: true}
	Lab_8    = PixelFormat{Space: SpaceLab, Channels: 3, BytesPerSample: 1}
	Lab_16   = PixelFormat{Space: SpaceLab, Channels: 3, BytesPerSample: 2}
	Lab_DBL  = PixelFormat{Space: SpaceLab, Channels: 3, Float: true}
	LabV2_16 = PixelFormat{Space: SpaceLabV2, Channels: 3, BytesPerSample: 2}
)
