package allocator

import "unsafe"

// StackAllocator ...
type StackAllocator struct {
	arena     arena
	stack     []uint32
	allocated uint32 // slots carved from the arena so far
	available uint32 // freed addrs currently on the stack
}

var _ Allocator = &StackAllocator{}

// NewStackAllocator ...
func NewStackAllocator(elemSize uint32, numSlots uint32) *StackAllocator {
	validateSlotConfig(elemSize, numSlots)
	return &StackAllocator{
		arena: newArena(elemSize, numSlots),
		stack: make([]uint32, numSlots),
	}
}

// Allocate ...
func (a *StackAllocator) Allocate() (unsafe.Pointer, error) {
	if a.available > 0 {
		a.available--
		return a.arena.toRealAddr(a.stack[a.available]), nil
	}

	if a.allocated >= a.arena.numSlots {
		return nil, ErrOutOfCapacity
	}
	addr := a.arena.slotAddr(a.allocated)
	a.allocated++
	return a.arena.toRealAddr(addr), nil
}

// Deallocate ...
func (a *StackAllocator) Deallocate(p unsafe.Pointer) {
	a.stack[a.available] = a.arena.toAddr(p)
	a.available++
}
