package allocator

import (
	"errors"
	"math"
	"unsafe"
)

const nullAddr uint32 = math.MaxUint32

// ErrOutOfCapacity ...
var ErrOutOfCapacity = errors.New("allocator: out of capacity")

// ErrElemTooSmall ...
var ErrElemTooSmall = errors.New("allocator: elem size less than link size")

// Allocator ...
type Allocator interface {
	// Allocate returns a pointer to uninitialized storage of one elem size
	Allocate() (unsafe.Pointer, error)

	// Deallocate returns a slot to the allocator. The pointer must have been
	// returned by Allocate of the same instance and must not already be freed,
	// this is not checked.
	Deallocate(p unsafe.Pointer)
}

type arena struct {
	elemSize uint32
	numSlots uint32
	data     []uint64
}

func newArena(elemSize uint32, numSlots uint32) arena {
	numWords := (uint64(elemSize)*uint64(numSlots) + 7) >> 3
	return arena{
		elemSize: elemSize,
		numSlots: numSlots,
		data:     make([]uint64, numWords),
	}
}

func (a *arena) slotAddr(index uint32) uint32 {
	return index * a.elemSize
}

func (a *arena) toRealAddr(addr uint32) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(&a.data[0])) + uintptr(addr))
}

func (a *arena) toAddr(p unsafe.Pointer) uint32 {
	return uint32(uintptr(p) - uintptr(unsafe.Pointer(&a.data[0])))
}

func validateSlotConfig(elemSize uint32, numSlots uint32) {
	if elemSize == 0 {
		panic("ElemSize must > 0")
	}
	if numSlots == 0 {
		panic("NumSlots must > 0")
	}
}
