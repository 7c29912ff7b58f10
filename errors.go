// SPDX-License-Identifier: MIT
package lcms2

import "errors"

// Sentinel errors. Errors returned by this package wrap one of these, so
// callers can classify failures with errors.Is while still getting a
// descriptive message.
var (
	// ErrConstruction reports that the engine could not build an object
	// from the given inputs: a corrupt or truncated ICC blob, a profile
	// pair no transform chain exists for, and so on. Details are emitted
	// through the context logger.
	ErrConstruction = errors.New("lcms2: object creation failed")

	// ErrInvalidFormat reports a pixel-format code that does not decode
	// to a meaningful layout: reserved bits set, an unknown color-space
	// tag, or a field combination the engine rejects.
	ErrInvalidFormat = errors.New("lcms2: invalid pixel format")

	// ErrLayoutMismatch reports that a buffer's element type or length
	// does not agree with the pixel format of the transform end it was
	// passed to.
	ErrLayoutMismatch = errors.New("lcms2: buffer layout mismatch")

	// ErrMissingData reports that a profile lacks the tags needed for the
	// requested operation.
	ErrMissingData = errors.New("lcms2: missing profile data")
)
