// SPDX-License-Identifier: MIT
package lcms2

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// The typed execution functions accept any element type whose in-memory
// layout matches the pixel format: same total size, only fixed-width
// numeric fields, no padding. The check runs once per (type, format) pair
// and is cached.

type layoutKey struct {
	rt   reflect.Type
	code uint32
}

var layoutCache sync.Map // layoutKey -> error (nil when the pair is valid)

func checkLayout(rt reflect.Type, f PixelFormat) error {
	key := layoutKey{rt: rt, code: f.Encode()}
	if v, ok := layoutCache.Load(key); ok {
		if v == nil {
			return nil
		}
		return v.(error)
	}
	err := layoutOf(rt, f)
	layoutCache.Store(key, err)
	return err
}

func layoutOf(rt reflect.Type, f PixelFormat) error {
	if f.Planar {
		return fmt.Errorf("%w: planar %v has no per-pixel element type, use the []byte API", ErrLayoutMismatch, f)
	}
	want := f.BytesPerPixel()
	if int(rt.Size()) != want {
		return fmt.Errorf("%w: %v occupies %d bytes, %v pixels occupy %d", ErrLayoutMismatch, rt, rt.Size(), f, want)
	}
	return fixedNumeric(rt)
}

// fixedNumeric rejects element types whose bytes the engine must not
// write: anything with pointers, bools (only two bit patterns are valid),
// platform-sized integers, or padding the engine would scribble over.
func fixedNumeric(rt reflect.Type) error {
	switch rt.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return fixedNumeric(rt.Elem())
	case reflect.Struct:
		var fields uintptr
		for i := 0; i < rt.NumField(); i++ {
			ft := rt.Field(i).Type
			if err := fixedNumeric(ft); err != nil {
				return err
			}
			fields += ft.Size()
		}
		if fields != rt.Size() {
			return fmt.Errorf("%w: %v contains padding", ErrLayoutMismatch, rt)
		}
		return nil
	}
	return fmt.Errorf("%w: %v is not a fixed-width numeric layout", ErrLayoutMismatch, rt)
}

// bytesView reinterprets a slice of fixed-layout pixels as raw bytes. The
// caller guarantees via checkLayout that the element type has no pointers.
func bytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := unsafe.Sizeof(s[0])
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(size))
}
