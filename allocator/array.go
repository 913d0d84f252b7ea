package allocator

import "unsafe"

// ArrayAllocator ...
type ArrayAllocator struct {
	arena arena
	used  []bool
}

var _ Allocator = &ArrayAllocator{}

// NewArrayAllocator ...
func NewArrayAllocator(elemSize uint32, numSlots uint32) *ArrayAllocator {
	validateSlotConfig(elemSize, numSlots)
	return &ArrayAllocator{
		arena: newArena(elemSize, numSlots),
		used:  make([]bool, numSlots),
	}
}

// Allocate ...
func (a *ArrayAllocator) Allocate() (unsafe.Pointer, error) {
	for i := range a.used {
		if !a.used[i] {
			a.used[i] = true
			return a.arena.toRealAddr(a.arena.slotAddr(uint32(i))), nil
		}
	}
	return nil, ErrOutOfCapacity
}

// Deallocate ...
// The computed slot index is not bounds checked.
func (a *ArrayAllocator) Deallocate(p unsafe.Pointer) {
	index := a.arena.toAddr(p) / a.arena.elemSize
	a.used[index] = false
}
