//go:build !goexperiment.arenas

// SPDX-License-Identifier: MIT
package mem

// Manager allocates using the regular Go heap in this build. It still
// carries a Scratch bundle so hot paths keep their buffer reuse.
type Manager struct {
	Sc *Scratch
}

// NewManager returns a Manager using standard allocation.
func NewManager() Manager { return Manager{Sc: newHeapScratch()} }

// Scratch returns the reusable scratch bundle.
func (m Manager) Scratch() *Scratch { return m.Sc }

func (m Manager) IsZero() bool { return m.Sc == nil }

// Generic helpers (package-level functions).
func New[T any](m Manager) *T               { return new(T) }
func MakeSlice[T any](m Manager, n int) []T { return make([]T, n) }

// FreeAll is a no-op on the heap build.
func (Manager) FreeAll() {}

// NewFrame returns a child Manager with its own Scratch bundle, taken from
// a pool so per-call frames stay cheap.
func (m Manager) NewFrame() Manager {
	return Manager{Sc: heapScratchPool.Get().(*Scratch)}
}

// Close returns the Scratch to the pool.
func (m Manager) Close() {
	if m.Sc != nil {
		heapScratchPool.Put(m.Sc)
	}
}

// WithFrame runs fn with a child Manager and closes it on return.
func (m Manager) WithFrame(fn func(Manager)) {
	child := m.NewFrame()
	defer child.Close()
	fn(child)
}
