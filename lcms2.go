// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"

	"github.com/yzigangirova/lcms2-go/internal/engine"
)

// EncodedVersion is the engine version in Little CMS encoding
// (2150 means 2.15).
const EncodedVersion = engine.LCMS_VERSION

// Intent selects the ICC rendering intent of a transform. Values 0-3 are
// the ICC-defined intents; 10-15 are the black-preserving variants for
// CMYK workflows.
type Intent uint32

const (
	IntentPerceptual           Intent = engine.INTENT_PERCEPTUAL
	IntentRelativeColorimetric Intent = engine.INTENT_RELATIVE_COLORIMETRIC
	IntentSaturation           Intent = engine.INTENT_SATURATION
	IntentAbsoluteColorimetric Intent = engine.INTENT_ABSOLUTE_COLORIMETRIC

	IntentPreserveKOnlyPerceptual            Intent = engine.INTENT_PRESERVE_K_ONLY_PERCEPTUAL
	IntentPreserveKOnlyRelativeColorimetric  Intent = engine.INTENT_PRESERVE_K_ONLY_RELATIVE_COLORIMETRIC
	IntentPreserveKOnlySaturation            Intent = engine.INTENT_PRESERVE_K_ONLY_SATURATION
	IntentPreserveKPlanePerceptual           Intent = engine.INTENT_PRESERVE_K_PLANE_PERCEPTUAL
	IntentPreserveKPlaneRelativeColorimetric Intent = engine.INTENT_PRESERVE_K_PLANE_RELATIVE_COLORIMETRIC
	IntentPreserveKPlaneSaturation           Intent = engine.INTENT_PRESERVE_K_PLANE_SATURATION
)

func (i Intent) String() string {
	switch i {
	case IntentPerceptual:
		return "perceptual"
	case IntentRelativeColorimetric:
		return "relative colorimetric"
	case IntentSaturation:
		return "saturation"
	case IntentAbsoluteColorimetric:
		return "absolute colorimetric"
	}
	return fmt.Sprintf("intent(%d)", uint32(i))
}

// Flags tune transform construction. They combine with bitwise or.
type Flags uint32

const (
	// FlagNoCache disables the one-pixel result cache. A transform built
	// with this flag has no mutable per-call state and is safe for
	// concurrent use; SharedTransform sets it implicitly.
	FlagNoCache Flags = engine.CmsFLAGS_NOCACHE

	FlagNoOptimize             Flags = engine.CmsFLAGS_NOOPTIMIZE
	FlagNullTransform          Flags = engine.CmsFLAGS_NULLTRANSFORM
	FlagGamutCheck             Flags = engine.CmsFLAGS_GAMUTCHECK
	FlagSoftProofing           Flags = engine.CmsFLAGS_SOFTPROOFING
	FlagBlackPointCompensation Flags = engine.CmsFLAGS_BLACKPOINTCOMPENSATION
	FlagNoWhiteOnWhiteFixup    Flags = engine.CmsFLAGS_NOWHITEONWHITEFIXUP
	FlagHighResPrecalc         Flags = engine.CmsFLAGS_HIGHRESPRECALC
	FlagLowResPrecalc          Flags = engine.CmsFLAGS_LOWRESPRECALC
	FlagDeviceLink8Bits        Flags = engine.CmsFLAGS_8BITS_DEVICELINK
	FlagGuessDeviceClass       Flags = engine.CmsFLAGS_GUESSDEVICECLASS
	FlagKeepSequence           Flags = engine.CmsFLAGS_KEEP_SEQUENCE
	FlagForceCLUT              Flags = engine.CmsFLAGS_FORCE_CLUT
	FlagCLUTPostLinearization  Flags = engine.CmsFLAGS_CLUT_POST_LINEARIZATION
	FlagCLUTPreLinearization   Flags = engine.CmsFLAGS_CLUT_PRE_LINEARIZATION
	FlagNoNegatives            Flags = engine.CmsFLAGS_NONEGATIVES
	FlagCopyAlpha              Flags = engine.CmsFLAGS_COPY_ALPHA
	FlagNoDefaultResourceDef   Flags = engine.CmsFLAGS_NODEFAULTRESOURCEDEF
)

// Has reports whether all bits of other are set in f.
func (f Flags) Has(other Flags) bool { return f&other == other }

// UsedDirection tells IsIntentSupported which role the profile plays in the
// transform being considered.
type UsedDirection uint32

const (
	UsedAsInput  UsedDirection = engine.LCMS_USED_AS_INPUT
	UsedAsOutput UsedDirection = engine.LCMS_USED_AS_OUTPUT
	UsedAsProof  UsedDirection = engine.LCMS_USED_AS_PROOF
)

// InfoType selects which localized text block Profile.Info reads.
type InfoType int

const (
	InfoDescription InfoType = iota
	InfoManufacturer
	InfoModel
	InfoCopyright
)

// ColorSpaceSignature is a four-character ICC color space tag.
type ColorSpaceSignature uint32

const (
	SigXYZData  ColorSpaceSignature = ColorSpaceSignature(engine.CmsSigXYZData)
	SigLabData  ColorSpaceSignature = ColorSpaceSignature(engine.CmsSigLabData)
	SigRgbData  ColorSpaceSignature = ColorSpaceSignature(engine.CmsSigRgbData)
	SigGrayData ColorSpaceSignature = ColorSpaceSignature(engine.CmsSigGrayData)
	SigCmykData ColorSpaceSignature = ColorSpaceSignature(engine.CmsSigCmykData)
	SigCmyData  ColorSpaceSignature = ColorSpaceSignature(engine.CmsSigCmyData)
)

// Channels returns the number of device channels of the color space, or 0
// if the signature is unknown.
func (s ColorSpaceSignature) Channels() int {
	n := engine.ChannelsOfColorSpace(engine.ColorSpaceSignature(s))
	if n < 0 {
		return 0
	}
	return int(n)
}

func (s ColorSpaceSignature) String() string { return fourCC(uint32(s)) }

// ProfileClassSignature is a four-character ICC device class tag.
type ProfileClassSignature uint32

const (
	SigInputClass      ProfileClassSignature = ProfileClassSignature(engine.CmsSigInputClass)
	SigDisplayClass    ProfileClassSignature = ProfileClassSignature(engine.CmsSigDisplayClass)
	SigOutputClass     ProfileClassSignature = ProfileClassSignature(engine.CmsSigOutputClass)
	SigLinkClass       ProfileClassSignature = ProfileClassSignature(engine.CmsSigLinkClass)
	SigAbstractClass   ProfileClassSignature = ProfileClassSignature(engine.CmsSigAbstractClass)
	SigColorSpaceClass ProfileClassSignature = ProfileClassSignature(engine.CmsSigColorSpaceClass)
	SigNamedColorClass ProfileClassSignature = ProfileClassSignature(engine.CmsSigNamedColorClass)
)

func (s ProfileClassSignature) String() string { return fourCC(uint32(s)) }

func fourCC(v uint32) string {
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			b[i] = '?'
		}
	}
	return string(b[:])
}
