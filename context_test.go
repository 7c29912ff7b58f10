// SPDX-License-Identifier: MIT
package lcms2

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	assert.InDelta(t, 1.0, ctx.AdaptationState(), 1e-9)

	codes := ctx.AlarmCodes()
	assert.Equal(t, uint16(0x7F00), codes[0])
	assert.Equal(t, uint16(0x7F00), codes[2])
	assert.Equal(t, uint16(0), codes[3])
}

func TestContextStateRoundTrip(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	prev := ctx.SetAdaptationState(0.25)
	assert.InDelta(t, 1.0, prev, 1e-9)
	assert.InDelta(t, 0.25, ctx.AdaptationState(), 1e-9)

	var codes [16]uint16
	codes[0] = 0x1234
	codes[15] = 0xBEEF
	ctx.SetAlarmCodes(codes)
	assert.Equal(t, codes, ctx.AlarmCodes())
}

func TestContextIsolation(t *testing.T) {
	a := NewContext()
	defer a.Close()
	b := NewContext()
	defer b.Close()

	a.SetAdaptationState(0)
	var codes [16]uint16
	codes[0] = 0xAAAA
	a.SetAlarmCodes(codes)

	assert.InDelta(t, 1.0, b.AdaptationState(), 1e-9)
	assert.Equal(t, uint16(0x7F00), b.AlarmCodes()[0])
}

func TestContextClone(t *testing.T) {
	ctx := NewContextWithUserData("pipeline-7")
	defer ctx.Close()
	ctx.SetAdaptationState(0.5)
	var codes [16]uint16
	codes[1] = 0x4242
	ctx.SetAlarmCodes(codes)

	dup := ctx.Clone()
	defer dup.Close()

	assert.Equal(t, "pipeline-7", dup.UserData())
	assert.InDelta(t, 0.5, dup.AdaptationState(), 1e-9)
	assert.Equal(t, uint16(0x4242), dup.AlarmCodes()[1])

	// The clone is a snapshot, not a view.
	ctx.SetAdaptationState(0.9)
	assert.InDelta(t, 0.5, dup.AdaptationState(), 1e-9)
}

func TestSupportedIntents(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	intents := ctx.SupportedIntents()
	for _, want := range []Intent{
		IntentPerceptual,
		IntentRelativeColorimetric,
		IntentSaturation,
		IntentAbsoluteColorimetric,
	} {
		desc, ok := intents[want]
		assert.Truef(t, ok, "intent %v missing", want)
		assert.NotEmpty(t, desc)
	}
}

func TestGlobalContext(t *testing.T) {
	assert.Same(t, Global(), Global())
	assert.Panics(t, func() { Global().Close() })
}

func TestContextCloseSemantics(t *testing.T) {
	ctx := NewContext()
	ctx.Close()
	assert.Panics(t, func() { ctx.Close() })
	assert.Panics(t, func() { ctx.AdaptationState() })
	assert.Panics(t, func() { ctx.Clone() })
}

func TestContextLoggerReceivesEngineErrors(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ctx.SetLogger(logger)

	// A corrupt profile makes the engine report through the handler. The
	// blob is header-sized so the failure is a bad signature, not a short
	// read.
	garbage := make([]byte, 256)
	for i := range garbage {
		garbage[i] = 'X'
	}
	_, err := ctx.ProfileFromBytes(garbage)
	require.ErrorIs(t, err, ErrConstruction)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestProfilesInContext(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	p := ctx.SRGBProfile()
	defer p.Close()
	assert.Equal(t, SigRgbData, p.ColorSpace())

	xform, err := ctx.NewTransform(p, RGB_8, p, RGB_8, IntentPerceptual, 0)
	require.NoError(t, err)
	defer xform.Close()
	assert.Same(t, ctx, xform.Context())
}
