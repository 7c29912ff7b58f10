//go:build !goexperiment.arenas

package engine

// transformArena stands in for arena.Arena on default builds, where
// transform scratch memory is plain heap memory and freeing is a no-op.
type transformArena struct{}

func (a *transformArena) Free() {}
