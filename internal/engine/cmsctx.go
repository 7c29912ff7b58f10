package engine

import (
	"github.com/yzigangirova/lcms2-go/internal/mem"
)

// Context creation/destruction. Context0 (the nil ContextID) lives in
// globalContext and is never allocated nor freed; everything here manages
// the pool of user contexts that cmsGetContext searches.

// dupContextChunks fills ctx.chunks with copies of the chunks of src, or of
// the Context0 defaults when src is nil (or lacks a given chunk). Copies are
// by value so a new context never aliases mutable state of its source.
func dupContextChunks(ctx CmsContext, src CmsContext) {
	from := func(mc cmsMemoryClient) any {
		if src != nil && src.chunks[mc] != nil {
			return src.chunks[mc]
		}
		return globalContext.chunks[mc]
	}

	if p, ok := from(Logger).(*cmsLogErrorChunkType); ok {
		c := *p
		ctx.chunks[Logger] = &c
	}
	if p, ok := from(AlarmCodesContext).(*cmsAlarmCodesChunkType); ok {
		c := *p
		ctx.chunks[AlarmCodesContext] = &c
	}
	if p, ok := from(AdaptationStateContext).(*cmsAdaptationStateChunkType); ok {
		c := *p
		ctx.chunks[AdaptationStateContext] = &c
	}
	if p, ok := from(MemPlugin).(*cmsMemPluginChunkType); ok {
		c := *p
		ctx.chunks[MemPlugin] = &c
	}
	if p, ok := from(InterpPlugin).(*cmsInterpPluginChunkType); ok {
		c := *p
		ctx.chunks[InterpPlugin] = &c
	}
	if p, ok := from(CurvesPlugin).(*cmsCurvesPluginChunkType); ok {
		c := *p
		ctx.chunks[CurvesPlugin] = &c
	}
	if p, ok := from(FormattersPlugin).(*cmsFormattersPluginChunkType); ok {
		c := *p
		ctx.chunks[FormattersPlugin] = &c
	}
	if p, ok := from(TagTypePlugin).(*cmsTagTypePluginChunkType); ok {
		c := *p
		ctx.chunks[TagTypePlugin] = &c
	}
	if p, ok := from(TagPlugin).(*cmsTagPluginChunkType); ok {
		c := *p
		ctx.chunks[TagPlugin] = &c
	}
	if p, ok := from(IntentPlugin).(*cmsIntentsPluginChunkType); ok {
		c := *p
		ctx.chunks[IntentPlugin] = &c
	}
	if p, ok := from(MPEPlugin).(*cmsTagTypePluginChunkType); ok {
		c := *p
		ctx.chunks[MPEPlugin] = &c
	}
	if p, ok := from(OptimizationPlugin).(*cmsOptimizationPluginChunkType); ok {
		c := *p
		ctx.chunks[OptimizationPlugin] = &c
	}
	if p, ok := from(TransformPlugin).(*cmsTransformPluginChunkType); ok {
		c := *p
		ctx.chunks[TransformPlugin] = &c
	}
	if p, ok := from(MutexPlugin).(*cmsMutexPluginChunkType); ok {
		c := *p
		ctx.chunks[MutexPlugin] = &c
	}
	if p, ok := from(ParallelizationPlugin).(*cmsParallelizationPluginChunkType); ok {
		c := *p
		ctx.chunks[ParallelizationPlugin] = &c
	}
}

// cmsCreateContext allocates a new context with the Context0 defaults and
// registers it in the pool so cmsGetContext can resolve it.
func cmsCreateContext(mm mem.Manager, UserData any) CmsContext {
	_ = mm

	ctx := &CmsContextStruct{}
	ctx.chunks[UserPtr] = UserData
	dupContextChunks(ctx, nil)

	CmsContextPoolHeadMutex.Lock()
	ctx.Next = CmsContextPoolHead
	CmsContextPoolHead = ctx
	CmsContextPoolHeadMutex.Unlock()

	return ctx
}

// cmsDupContext duplicates a context with all of its chunk settings. A nil
// NewUserData keeps the user data of the source context.
func cmsDupContext(mm mem.Manager, src CmsContext, NewUserData any) CmsContext {
	_ = mm

	ctx := &CmsContextStruct{}
	if NewUserData != nil {
		ctx.chunks[UserPtr] = NewUserData
	} else if src != nil {
		ctx.chunks[UserPtr] = src.chunks[UserPtr]
	}
	dupContextChunks(ctx, src)

	CmsContextPoolHeadMutex.Lock()
	ctx.Next = CmsContextPoolHead
	CmsContextPoolHead = ctx
	CmsContextPoolHeadMutex.Unlock()

	return ctx
}

// cmsDeleteContext unlinks the context from the pool. Objects created in the
// context must already be gone; the chunks themselves are garbage collected.
func cmsDeleteContext(ContextID CmsContext) {
	if ContextID == nil {
		return // Context0 is not deletable
	}

	CmsContextPoolHeadMutex.Lock()
	defer CmsContextPoolHeadMutex.Unlock()

	var prev CmsContext
	for ctx := CmsContextPoolHead; ctx != nil; ctx = ctx.Next {
		if ctx == ContextID {
			if prev == nil {
				CmsContextPoolHead = ctx.Next
			} else {
				prev.Next = ctx.Next
			}
			ctx.Next = nil
			return
		}
		prev = ctx
	}
}

// cmsGetContextUserData returns the user data associated when the context
// was created or duplicated.
func cmsGetContextUserData(ContextID CmsContext) any {
	return CmsContextGetClientChunk(ContextID, UserPtr)
}

// cmsSetLogErrorHandlerTHR installs an error handler on the given context
// (Context0 when nil). A nil handler restores the silent default.
func cmsSetLogErrorHandlerTHR(ContextID CmsContext, fn cmsLogErrorHandlerFunction) {
	lhg, ok := CmsContextGetClientChunk(ContextID, Logger).(*cmsLogErrorChunkType)
	if !ok {
		return
	}
	if fn == nil {
		fn = DefaultLogErrorHandlerFunction
	}
	lhg.LogErrorHandler = fn
}

// cmsGetSupportedIntentsTHR lists the rendering intents implemented by the
// context: the built-in table plus whatever an intents plug-in registered.
func cmsGetSupportedIntentsTHR(ContextID CmsContext) (codes []uint32, descriptions []string) {
	if chunk, ok := CmsContextGetClientChunk(ContextID, IntentPlugin).(*cmsIntentsPluginChunkType); ok {
		for pl := chunk.Intents; pl != nil; pl = pl.Next {
			codes = append(codes, pl.Intent)
			descriptions = append(descriptions, pl.Description)
		}
	}
	for i := range DefaultIntents {
		codes = append(codes, DefaultIntents[i].Intent)
		descriptions = append(descriptions, DefaultIntents[i].Description)
	}
	return codes, descriptions
}
