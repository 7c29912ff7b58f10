// SPDX-License-Identifier: MIT
package mem

import "sync"

const MaxScratchChannels = 128      // == MAX_STAGE_CHANNELS in lcms
const MaxScratchChannelsShort = 16  // cmsMAXCHANNELS

// Scratch holds reusable working buffers for hot paths.
type Scratch struct {
	LUT     [2][]float32 // len == MaxScratchChannels
	In16    []uint16     // len == MaxScratchChannels
	Out16   []uint16     // len == MaxScratchChannels
	WInU16  []uint16     // len == MaxScratchChannelsShort
	WOutU16 []uint16     // len == MaxScratchChannelsShort
	WInF32  []float32    // len == MaxScratchChannelsShort
	WOutF32 []float32    // len == MaxScratchChannelsShort
	Tmp1U16 []uint16     // len == MaxScratchChannels
	Tmp2U16 []uint16     // len == MaxScratchChannels
	Tmp1F32 []float32    // len == MaxScratchChannels
	Tmp2F32 []float32    // len == MaxScratchChannels

	// tiny tone-curve-only buffers
	ToneInU16  [1]uint16
	ToneOutU16 [1]uint16
	ToneInF32  [1]float32
	ToneOutF32 [1]float32
}

var heapScratchPool = sync.Pool{
	New: func() any { return newHeapScratch() },
}

func newHeapScratch() *Scratch {
	return &Scratch{
		LUT: [2][]float32{
			make([]float32, MaxScratchChannels),
			make([]float32, MaxScratchChannels),
		},
		In16:    make([]uint16, MaxScratchChannels),
		Out16:   make([]uint16, MaxScratchChannels),
		Tmp1U16: make([]uint16, MaxScratchChannels),
		Tmp2U16: make([]uint16, MaxScratchChannels),
		Tmp1F32: make([]float32, MaxScratchChannels),
		Tmp2F32: make([]float32, MaxScratchChannels),
		WInU16:  make([]uint16, MaxScratchChannelsShort),
		WOutU16: make([]uint16, MaxScratchChannelsShort),
		WInF32:  make([]float32, MaxScratchChannelsShort),
		WOutF32: make([]float32, MaxScratchChannelsShort),
	}
}
