//go:build goexperiment.arenas

package engine

import (
	"arena"
)

// transformArena is the per-transform arena used when the arenas
// experiment is enabled.
type transformArena = arena.Arena
