package engine

import (
	"github.com/yzigangirova/lcms2-go/internal/mem"
)

// api.go is the documented boundary of the engine: the outer package calls
// only what is exported here (plus the Cms* entry points and TYPE_/PT_/
// CmsFLAGS_/CmsSig* constants the port already exports). Everything else in
// this package is engine-internal.

// LogErrorHandlerFunction mirrors cmsLogErrorHandlerFunction for callers
// outside the package.
type LogErrorHandlerFunction = cmsLogErrorHandlerFunction

// Signature types of the profile header, aliased so the outer package can
// name them.
type (
	ColorSpaceSignature   = cmsColorSpaceSignature
	ProfileClassSignature = cmsProfileClassSignature
)

// Context management ---------------------------------------------------------

func CreateContext(mm mem.Manager, userData any) CmsContext {
	return cmsCreateContext(mm, userData)
}

func DupContext(mm mem.Manager, src CmsContext, newUserData any) CmsContext {
	return cmsDupContext(mm, src, newUserData)
}

func DeleteContext(ctx CmsContext) {
	cmsDeleteContext(ctx)
}

func GetContextUserData(ctx CmsContext) any {
	return cmsGetContextUserData(ctx)
}

func SetLogErrorHandlerTHR(ctx CmsContext, fn LogErrorHandlerFunction) {
	cmsSetLogErrorHandlerTHR(ctx, fn)
}

func GetSupportedIntentsTHR(ctx CmsContext) ([]uint32, []string) {
	return cmsGetSupportedIntentsTHR(ctx)
}

func SetAdaptationStateTHR(ctx CmsContext, d float64) float64 {
	return cmsSetAdaptationStateTHR(ctx, d)
}

func SetAlarmCodesTHR(ctx CmsContext, codes []uint16) {
	cmsSetAlarmCodesTHR(ctx, codes)
}

func GetAlarmCodesTHR(ctx CmsContext, codes []uint16) {
	cmsGetAlarmCodesTHR(ctx, codes)
}

// Profiles -------------------------------------------------------------------

func OpenProfileFromMemTHR(mm mem.Manager, ctx CmsContext, data []byte) CmsHPROFILE {
	return cmsOpenProfileFromMemTHR(mm, ctx, data, uint32(len(data)))
}

func OpenProfileFromFileTHR(mm mem.Manager, ctx CmsContext, path string) CmsHPROFILE {
	return cmsOpenProfileFromFileTHR(mm, ctx, path, "r")
}

func CreateGrayProfileTHR(mm mem.Manager, ctx CmsContext, wp *CmsCIExyY, curve *CmsToneCurve) CmsHPROFILE {
	return cmsCreateGrayProfileTHR(mm, ctx, wp, curve)
}

func CreateLab2ProfileTHR(mm mem.Manager, ctx CmsContext, wp *CmsCIExyY) CmsHPROFILE {
	return cmsCreateLab2ProfileTHR(mm, ctx, wp)
}

func CreateLab4ProfileTHR(mm mem.Manager, ctx CmsContext, wp *CmsCIExyY) CmsHPROFILE {
	return cmsCreateLab4ProfileTHR(mm, ctx, wp)
}

func CreateXYZProfileTHR(mm mem.Manager, ctx CmsContext) CmsHPROFILE {
	return cmsCreateXYZProfileTHR(mm, ctx)
}

// CreateNULLProfileTHR builds the fake NULL profile: gray input rendered to a
// constant zero, useful as a transform endpoint that discards color.
func CreateNULLProfileTHR(mm mem.Manager, ctx CmsContext) CmsHPROFILE {
	hProfile := cmsCreateProfilePlaceholder(mm, ctx)
	if hProfile == nil {
		return nil
	}

	cmsSetProfileVersion(hProfile, 4.4)
	cmsSetDeviceClass(hProfile, CmsSigOutputClass)
	cmsSetColorSpace(hProfile, CmsSigGrayData)
	cmsSetPCS(hProfile, CmsSigLabData)
	cmsSetHeaderRenderingIntent(hProfile, INTENT_PERCEPTUAL)

	zero := []uint16{0, 0}
	emptyTab := cmsBuildTabulatedToneCurve16(mm, ctx, 2, zero)
	if emptyTab == nil {
		CmsCloseProfile(mm, hProfile)
		return nil
	}
	defer CmsFreeToneCurve(emptyTab)

	// Lab -> gray zero: pick the L* channel, then flatten it with the
	// all-zero curve.
	pickLstar := []float64{1.0, 0, 0}

	lut := cmsPipelineAlloc(mm, ctx, 3, 1)
	if lut == nil {
		CmsCloseProfile(mm, hProfile)
		return nil
	}

	ok := cmsPipelineInsertStage(lut, CmsAT_END, cmsStageAllocMatrix(mm, ctx, 1, 3, pickLstar, nil)) &&
		cmsPipelineInsertStage(lut, CmsAT_END, cmsStageAllocToneCurves(mm, ctx, 1, []*CmsToneCurve{emptyTab}))

	ok = ok &&
		SetTextTags(mm, hProfile, StringToUTF16Slice("NULL profile built-in")) &&
		cmsWriteTag(mm, hProfile, CmsSigBToA0Tag, lut) &&
		cmsWriteTag(mm, hProfile, CmsSigMediaWhitePointTag, cmsD50_XYZ())

	cmsPipelineFree(mm, lut)

	if !ok {
		CmsCloseProfile(mm, hProfile)
		return nil
	}
	return hProfile
}

func SaveProfileToFile(mm mem.Manager, hProfile CmsHPROFILE, path string) bool {
	return cmsSaveProfileToFile(mm, hProfile, path)
}

// SaveProfileToMem serializes the profile, returning the encoded ICC bytes.
func SaveProfileToMem(mm mem.Manager, hProfile CmsHPROFILE) ([]byte, bool) {
	size := cmsSaveProfileToIOhandler(mm, hProfile, nil)
	if size == 0 {
		return nil, false
	}

	buf := make([]byte, size)
	io := cmsOpenIOhandlerFromMem(mm, cmsGetProfileContextID(hProfile), buf, size, "w")
	if io == nil {
		return nil, false
	}
	if cmsSaveProfileToIOhandler(mm, hProfile, io) == 0 {
		cmsCloseIOhandler(io)
		return nil, false
	}
	if !cmsCloseIOhandler(io) {
		return nil, false
	}
	return buf, true
}

// ReadMediaWhitePoint reads the wtpt tag, when present.
func ReadMediaWhitePoint(mm mem.Manager, hProfile CmsHPROFILE) (x, y, z float64, ok bool) {
	wp, ok := cmsReadTag(mm, hProfile, CmsSigMediaWhitePointTag).(*cmsCIEXYZ)
	if !ok || wp == nil {
		return 0, 0, 0, false
	}
	return wp.X, wp.Y, wp.Z, true
}

func GetPCS(hProfile CmsHPROFILE) cmsColorSpaceSignature {
	return cmsGetPCS(hProfile)
}

func GetDeviceClass(hProfile CmsHPROFILE) cmsProfileClassSignature {
	return cmsGetDeviceClass(hProfile)
}

func GetProfileVersion(hProfile CmsHPROFILE) float64 {
	return cmsGetProfileVersion(hProfile)
}

func GetHeaderRenderingIntent(hProfile CmsHPROFILE) uint32 {
	return cmsGetHeaderRenderingIntent(hProfile)
}

func SetHeaderRenderingIntent(hProfile CmsHPROFILE, intent uint32) {
	cmsSetHeaderRenderingIntent(hProfile, intent)
}

func IsIntentSupported(hProfile CmsHPROFILE, intent uint32, usedDirection uint32) bool {
	return cmsIsIntentSupported(hProfile, intent, usedDirection)
}

func IsMatrixShaper(hProfile CmsHPROFILE) bool {
	return cmsIsMatrixShaper(hProfile)
}

func GetProfileContextID(hProfile CmsHPROFILE) CmsContext {
	return cmsGetProfileContextID(hProfile)
}

func ChannelsOfColorSpace(sig cmsColorSpaceSignature) int32 {
	return cmsChannelsOfColorSpace(sig)
}

// Transforms -----------------------------------------------------------------

func CreateTransformTHR(mm mem.Manager, ctx CmsContext,
	input CmsHPROFILE, inputFormat uint32,
	output CmsHPROFILE, outputFormat uint32,
	intent uint32, flags uint32) CmsHTRANSFORM {
	return cmsCreateTransformTHR(mm, ctx, input, inputFormat, output, outputFormat, intent, flags)
}

func CreateMultiprofileTransformTHR(mm mem.Manager, ctx CmsContext,
	profiles []CmsHPROFILE, inputFormat, outputFormat uint32,
	intent uint32, flags uint32) CmsHTRANSFORM {
	return cmsCreateMultiprofileTransformTHR(mm, ctx, profiles, uint32(len(profiles)), inputFormat, outputFormat, intent, flags)
}

func CreateProofingTransformTHR(mm mem.Manager, ctx CmsContext,
	input CmsHPROFILE, inputFormat uint32,
	output CmsHPROFILE, outputFormat uint32,
	proofing CmsHPROFILE, intent, proofingIntent uint32,
	flags uint32) CmsHTRANSFORM {
	return cmsCreateProofingTransformTHR(mm, ctx, input, inputFormat, output, outputFormat, proofing, intent, proofingIntent, flags)
}

func GetTransformInputFormat(hTransform CmsHTRANSFORM) uint32 {
	return cmsGetTransformInputFormat(hTransform)
}

func GetTransformOutputFormat(hTransform CmsHTRANSFORM) uint32 {
	return cmsGetTransformOutputFormat(hTransform)
}

func GetTransformContextID(hTransform CmsHTRANSFORM) CmsContext {
	return cmsGetTransformContextID(hTransform)
}

// Tone curves ----------------------------------------------------------------

func BuildTabulatedToneCurve16(mm mem.Manager, ctx CmsContext, values []uint16) *CmsToneCurve {
	return cmsBuildTabulatedToneCurve16(mm, ctx, uint32(len(values)), values)
}

func BuildTabulatedToneCurveFloat(mm mem.Manager, ctx CmsContext, values []float32) *CmsToneCurve {
	return cmsBuildTabulatedToneCurveFloat(mm, ctx, uint32(len(values)), values)
}

func EvalToneCurve16(mm mem.Manager, curve *CmsToneCurve, v uint16) uint16 {
	return cmsEvalToneCurve16(mm, curve, v)
}

func EvalToneCurveFloat(mm mem.Manager, curve *CmsToneCurve, v float32) float32 {
	return cmsEvalToneCurveFloat(mm, curve, v)
}

func ReverseToneCurve(mm mem.Manager, curve *CmsToneCurve) *CmsToneCurve {
	return cmsReverseToneCurve(mm, curve)
}

func ReverseToneCurveEx(mm mem.Manager, samples uint32, curve *CmsToneCurve) *CmsToneCurve {
	return cmsReverseToneCurveEx(mm, samples, curve)
}

func EstimateGamma(mm mem.Manager, curve *CmsToneCurve, precision float64) float64 {
	return cmsEstimateGamma(mm, curve, precision)
}

func IsToneCurveLinear(curve *CmsToneCurve) bool  { return cmsIsToneCurveLinear(curve) }
func IsToneCurveMonotonic(curve *CmsToneCurve) bool { return cmsIsToneCurveMonotonic(curve) }
func IsToneCurveDescending(curve *CmsToneCurve) bool { return cmsIsToneCurveDescending(curve) }
func IsToneCurveMultisegment(curve *CmsToneCurve) bool {
	return cmsIsToneCurveMultisegment(curve)
}

// ToneCurveEstimatedTable exposes the 16-bit table the curve is built on.
// The slice aliases curve memory and must not outlive the curve.
func ToneCurveEstimatedTable(curve *CmsToneCurve) []uint16 {
	if curve == nil {
		return nil
	}
	return curve.Table16
}

// White points ----------------------------------------------------------------

func D50xyY() CmsCIExyY { return *cmsD50_xyY() }

// D50XYZ returns the ICC D50 illuminant in XYZ coordinates.
func D50XYZ() (x, y, z float64) {
	d50 := cmsD50_XYZ()
	return d50.X, d50.Y, d50.Z
}

func WhitePointFromTemp(wp *CmsCIExyY, tempK float64) bool {
	return cmsWhitePointFromTemp(wp, tempK)
}

func TempFromWhitePoint(tempK *float64, wp *CmsCIExyY) bool {
	return cmsTempFromWhitePoint(tempK, wp)
}
