// SPDX-License-Identifier: MIT
package lcms2

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/yzigangirova/lcms2-go/internal/engine"
	"github.com/yzigangirova/lcms2-go/internal/mem"
)

// Context owns a private copy of the engine's global state: error logger,
// alarm codes, observer adaptation state and plug-in registrations. Objects
// created through a Context are isolated from objects of every other
// Context, so independent pipelines never contend on shared settings.
//
// A Context (other than the global one) must eventually be closed. Closing
// invalidates it; any later use through it panics.
type Context struct {
	raw    engine.CmsContext // nil for the global context
	mm     mem.Manager
	global bool
	closed atomic.Bool
}

var globalCtx = &Context{mm: mem.NewManager(), global: true}

func init() {
	// Route engine diagnostics of the global context through logrus.
	// Per-context handlers are installed by NewContext.
	engine.SetLogErrorHandlerTHR(nil, logrusHandler(logrus.StandardLogger()))
}

func logrusHandler(log logrus.FieldLogger) engine.LogErrorHandlerFunction {
	return func(_ engine.CmsContext, code uint32, text string) {
		log.WithField("code", code).Warn(text)
	}
}

// Global returns the process-wide context. It shares engine defaults with
// every other user of the global context, so prefer NewContext in library
// code. The global context cannot be closed.
func Global() *Context { return globalCtx }

// NewContext creates an isolated context initialized from the engine
// defaults. It panics only under resource exhaustion.
func NewContext() *Context { return NewContextWithUserData(nil) }

// NewContextWithUserData creates an isolated context carrying an arbitrary
// user value, retrievable with UserData.
func NewContextWithUserData(data any) *Context {
	mm := mem.NewManager()
	raw := engine.CreateContext(mm, data)
	if raw == nil {
		panic("lcms2: context allocation failed")
	}
	engine.SetLogErrorHandlerTHR(raw, logrusHandler(logrus.StandardLogger()))
	return &Context{raw: raw, mm: mm}
}

// Clone duplicates the context with all of its current settings. Cloning
// the global context snapshots the engine defaults into a fresh isolated
// context.
func (c *Context) Clone() *Context {
	c.check()
	mm := mem.NewManager()
	raw := engine.DupContext(mm, c.raw, nil)
	if raw == nil {
		panic("lcms2: context duplication failed")
	}
	return &Context{raw: raw, mm: mm}
}

// Close releases the context. Profiles and transforms created in it must
// already be closed. Closing the global context panics; closing twice
// panics.
func (c *Context) Close() {
	if c.global {
		panic("lcms2: the global context cannot be closed")
	}
	if !c.closed.CompareAndSwap(false, true) {
		panic("lcms2: context closed twice")
	}
	engine.DeleteContext(c.raw)
}

func (c *Context) check() {
	if c.closed.Load() {
		panic("lcms2: use of closed context")
	}
}

// UserData returns the value passed to NewContextWithUserData, or nil.
func (c *Context) UserData() any {
	c.check()
	return engine.GetContextUserData(c.raw)
}

// AdaptationState returns the degree of chromatic adaptation assumed for
// absolute colorimetric transforms, in [0, 1].
func (c *Context) AdaptationState() float64 {
	c.check()
	return engine.SetAdaptationStateTHR(c.raw, -1)
}

// SetAdaptationState sets the chromatic adaptation degree used by
// transforms created afterwards. 0 means no adaptation, 1 full adaptation.
// It returns the previous value.
func (c *Context) SetAdaptationState(d float64) float64 {
	c.check()
	return engine.SetAdaptationStateTHR(c.raw, d)
}

// AlarmCodes returns the 16-channel encoded values painted on out-of-gamut
// colors when gamut checking is enabled.
func (c *Context) AlarmCodes() [16]uint16 {
	c.check()
	var codes [16]uint16
	engine.GetAlarmCodesTHR(c.raw, codes[:])
	return codes
}

// SetAlarmCodes sets the out-of-gamut marker color for transforms created
// afterwards in this context.
func (c *Context) SetAlarmCodes(codes [16]uint16) {
	c.check()
	engine.SetAlarmCodesTHR(c.raw, codes[:])
}

// SupportedIntents lists the rendering intents this context implements,
// keyed by intent code. Plug-ins may extend the built-in set.
func (c *Context) SupportedIntents() map[Intent]string {
	c.check()
	codes, descriptions := engine.GetSupportedIntentsTHR(c.raw)
	intents := make(map[Intent]string, len(codes))
	for i, code := range codes {
		intents[Intent(code)] = descriptions[i]
	}
	return intents
}

// SetLogger redirects engine diagnostics raised in this context to log.
// A nil log restores the default logrus standard logger.
func (c *Context) SetLogger(log logrus.FieldLogger) {
	c.check()
	if log == nil {
		log = logrus.StandardLogger()
	}
	engine.SetLogErrorHandlerTHR(c.raw, logrusHandler(log))
}
