// SPDX-License-Identifier: MIT

// Package lcms2 is a memory-safe color management layer over a pure-Go port
// of the Little CMS engine. It exposes ICC profiles, pixel formats and color
// transforms behind handles whose lifetime is enforced by Go, so a freed
// profile or transform can never be dereferenced.
//
// The package distinguishes three failure classes:
//
//   - programmer misuse (using a closed handle, mismatched buffer shapes
//     that the type system cannot express) panics;
//   - recoverable conditions (corrupt profile data, incompatible formats)
//     return errors wrapping the sentinel values in this package;
//   - resource exhaustion during infallible constructors panics, matching
//     the rest of the Go runtime.
//
// Transforms guard their internal pixel cache with a mutex. A
// SharedTransform disables the cache at construction time and may be used
// from any number of goroutines without locking.
package lcms2
