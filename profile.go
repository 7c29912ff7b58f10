// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

// Profile is an open ICC profile: parsed from serialized ICC data or built
// in memory from colorimetric parameters. A Profile must be closed exactly
// once; use after Close panics. Closing a Profile does not invalidate
// transforms already built from it.
type Profile struct {
	raw    engine.CmsHPROFILE
	ctx    *Context
	closed atomic.Bool
}

// ProfileFromBytes parses an ICC profile from its serialized form in the
// global context. Corrupt or truncated data returns an error wrapping
// ErrConstruction.
func ProfileFromBytes(data []byte) (*Profile, error) {
	return Global().ProfileFromBytes(data)
}

// ProfileFromBytes parses an ICC profile in this context.
func (c *Context) ProfileFromBytes(data []byte) (*Profile, error) {
	c.check()
	raw := engine.OpenProfileFromMemTHR(c.mm, c.raw, data)
	if raw == nil {
		return nil, fmt.Errorf("%w: cannot parse %d-byte ICC blob", ErrConstruction, len(data))
	}
	return &Profile{raw: raw, ctx: c}, nil
}

// ProfileFromFile opens and parses an ICC profile file in the global
// context.
func ProfileFromFile(path string) (*Profile, error) {
	return Global().ProfileFromFile(path)
}

// ProfileFromFile opens and parses an ICC profile file in this context.
func (c *Context) ProfileFromFile(path string) (*Profile, error) {
	c.check()
	raw := engine.OpenProfileFromFileTHR(c.mm, c.raw, path)
	if raw == nil {
		return nil, fmt.Errorf("%w: cannot open profile %q", ErrConstruction, path)
	}
	return &Profile{raw: raw, ctx: c}, nil
}

// SRGBProfile builds the standard sRGB profile in the global context.
// Built-in profiles take no external input; failure means resource
// exhaustion and panics.
func SRGBProfile() *Profile { return Global().SRGBProfile() }

// SRGBProfile builds the standard sRGB profile in this context.
func (c *Context) SRGBProfile() *Profile {
	c.check()
	return c.builtin(engine.CmsCreate_sRGBProfileTHR(c.mm, c.raw), "sRGB")
}

// GrayProfile builds a grayscale profile from a white point and a transfer
// curve.
func GrayProfile(whitePoint CIExyY, transfer *ToneCurve) (*Profile, error) {
	return Global().GrayProfile(whitePoint, transfer)
}

// GrayProfile builds a grayscale profile in this context.
func (c *Context) GrayProfile(whitePoint CIExyY, transfer *ToneCurve) (*Profile, error) {
	c.check()
	wp := toEngineXyY(whitePoint)
	raw := engine.CreateGrayProfileTHR(c.mm, c.raw, &wp, transfer.handle())
	if raw == nil {
		return nil, fmt.Errorf("%w: gray profile", ErrConstruction)
	}
	return &Profile{raw: raw, ctx: c}, nil
}

// RGBProfile builds an RGB matrix-shaper profile from a white point, the
// chromaticities of the primaries and per-channel transfer curves.
func RGBProfile(whitePoint CIExyY, primaries CIExyYTriple, transfer [3]*ToneCurve) (*Profile, error) {
	return Global().RGBProfile(whitePoint, primaries, transfer)
}

// RGBProfile builds an RGB matrix-shaper profile in this context.
func (c *Context) RGBProfile(whitePoint CIExyY, primaries CIExyYTriple, transfer [3]*ToneCurve) (*Profile, error) {
	c.check()
	wp := toEngineXyY(whitePoint)
	prim := toEngineTriple(primaries)
	curves := []*engine.CmsToneCurve{
		transfer[0].handle(), transfer[1].handle(), transfer[2].handle(),
	}
	raw := engine.CmsCreateRGBProfileTHR(c.mm, c.raw, &wp, &prim, curves)
	if raw == nil {
		return nil, fmt.Errorf("%w: RGB profile", ErrConstruction)
	}
	return &Profile{raw: raw, ctx: c}, nil
}

// Lab2Profile builds a Lab identity profile with the old ICC v2 Lab
// encoding.
func Lab2Profile(whitePoint CIExyY) (*Profile, error) {
	return Global().Lab2Profile(whitePoint)
}

// Lab2Profile builds a v2 Lab identity profile in this context.
func (c *Context) Lab2Profile(whitePoint CIExyY) (*Profile, error) {
	c.check()
	wp := toEngineXyY(whitePoint)
	raw := engine.CreateLab2ProfileTHR(c.mm, c.raw, &wp)
	if raw == nil {
		return nil, fmt.Errorf("%w: Lab v2 profile", ErrConstruction)
	}
	return &Profile{raw: raw, ctx: c}, nil
}

// Lab4Profile builds a Lab identity profile with the ICC v4 Lab encoding.
func Lab4Profile(whitePoint CIExyY) (*Profile, error) {
	return Global().Lab4Profile(whitePoint)
}

// Lab4Profile builds a v4 Lab identity profile in this context.
func (c *Context) Lab4Profile(whitePoint CIExyY) (*Profile, error) {
	c.check()
	wp := toEngineXyY(whitePoint)
	raw := engine.CreateLab4ProfileTHR(c.mm, c.raw, &wp)
	if raw == nil {
		return nil, fmt.Errorf("%w: Lab v4 profile", ErrConstruction)
	}
	return &Profile{raw: raw, ctx: c}, nil
}

// XYZProfile builds the XYZ identity profile in the global context.
func XYZProfile() *Profile { return Global().XYZProfile() }

// XYZProfile builds the XYZ identity profile in this context.
func (c *Context) XYZProfile() *Profile {
	c.check()
	return c.builtin(engine.CreateXYZProfileTHR(c.mm, c.raw), "XYZ")
}

// NullProfile builds the NULL profile, a transform endpoint that discards
// color, in the global context.
func NullProfile() *Profile { return Global().NullProfile() }

// NullProfile builds the NULL profile in this context.
func (c *Context) NullProfile() *Profile {
	c.check()
	return c.builtin(engine.CreateNULLProfileTHR(c.mm, c.raw), "NULL")
}

func (c *Context) builtin(raw engine.CmsHPROFILE, name string) *Profile {
	if raw == nil {
		panic("lcms2: cannot build the " + name + " profile")
	}
	return &Profile{raw: raw, ctx: c}
}

func (p *Profile) handle() engine.CmsHPROFILE {
	if p.closed.Load() {
		panic("lcms2: use of closed profile")
	}
	return p.raw
}

// Close releases the profile. Closing twice panics. Transforms built from
// the profile keep working; they own their own copy of the needed tables.
func (p *Profile) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		panic("lcms2: profile closed twice")
	}
	engine.CmsCloseProfile(p.ctx.mm, p.raw)
}

// ColorSpace returns the device color space signature of the profile.
func (p *Profile) ColorSpace() ColorSpaceSignature {
	return ColorSpaceSignature(engine.CmsGetColorSpace(p.handle()))
}

// PCS returns the profile connection space signature, normally Lab or XYZ.
func (p *Profile) PCS() ColorSpaceSignature {
	return ColorSpaceSignature(engine.GetPCS(p.handle()))
}

// DeviceClass returns the profile class signature (display, output, ...).
func (p *Profile) DeviceClass() ProfileClassSignature {
	return ProfileClassSignature(engine.GetDeviceClass(p.handle()))
}

// Version returns the ICC specification version of the profile, for
// example 4.4.
func (p *Profile) Version() float64 {
	return engine.GetProfileVersion(p.handle())
}

// HeaderRenderingIntent returns the rendering intent declared in the
// profile header.
func (p *Profile) HeaderRenderingIntent() Intent {
	return Intent(engine.GetHeaderRenderingIntent(p.handle()))
}

// SetHeaderRenderingIntent changes the rendering intent declared in the
// profile header. It affects profiles saved afterwards, not transforms
// already built.
func (p *Profile) SetHeaderRenderingIntent(intent Intent) {
	engine.SetHeaderRenderingIntent(p.handle(), uint32(intent))
}

// IsIntentSupported reports whether the profile implements the intent in
// the given direction.
func (p *Profile) IsIntentSupported(intent Intent, direction UsedDirection) bool {
	return engine.IsIntentSupported(p.handle(), uint32(intent), uint32(direction))
}

// IsMatrixShaper reports whether the profile can be modeled as a matrix
// plus per-channel curves.
func (p *Profile) IsMatrixShaper() bool {
	return engine.IsMatrixShaper(p.handle())
}

// Info reads a localized text block of the profile, preferring US English
// and falling back to the first entry. Missing blocks return "".
func (p *Profile) Info(info InfoType) string {
	h := p.handle()
	mm := p.ctx.mm
	n := engine.CmsGetProfileInfoASCII(mm, h, engine.CmsInfoType(info), "en", "US", nil, 0)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	engine.CmsGetProfileInfoASCII(mm, h, engine.CmsInfoType(info), "en", "US", buf, n)
	return strings.TrimRight(string(buf), "\x00")
}

// Description returns the profile description text.
func (p *Profile) Description() string { return p.Info(InfoDescription) }

// MediaWhitePoint reads the media white point tag. Profiles without the
// tag return an error wrapping ErrMissingData.
func (p *Profile) MediaWhitePoint() (CIEXYZ, error) {
	x, y, z, ok := engine.ReadMediaWhitePoint(p.ctx.mm, p.handle())
	if !ok {
		return CIEXYZ{}, fmt.Errorf("%w: no media white point tag", ErrMissingData)
	}
	return CIEXYZ{X: x, Y: y, Z: z}, nil
}

// ICC serializes the profile to its ICC byte form.
func (p *Profile) ICC() ([]byte, error) {
	data, ok := engine.SaveProfileToMem(p.ctx.mm, p.handle())
	if !ok {
		return nil, fmt.Errorf("%w: profile serialization", ErrConstruction)
	}
	return data, nil
}

// SaveToFile writes the serialized profile to path.
func (p *Profile) SaveToFile(path string) error {
	if !engine.SaveProfileToFile(p.ctx.mm, p.handle(), path) {
		return fmt.Errorf("%w: cannot save profile to %q", ErrConstruction, path)
	}
	return nil
}
