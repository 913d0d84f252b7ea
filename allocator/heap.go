package allocator

import "unsafe"

type entryState uint32

const (
	entryStateUsed entryState = 0
	entryStateFree entryState = 1
)

type heapEntry struct {
	state entryState
	addr  uint32
}

// HeapAllocator ...
//
// entries[:available] hold FREE entries and keep the max-heap property keyed
// on state; entries[available:] are USED placeholders with nullAddr and never
// take part in heap operations.
type HeapAllocator struct {
	arena     arena
	entries   []heapEntry
	available uint32
}

var _ Allocator = &HeapAllocator{}

// NewHeapAllocator ...
func NewHeapAllocator(elemSize uint32, numSlots uint32) *HeapAllocator {
	validateSlotConfig(elemSize, numSlots)
	a := &HeapAllocator{
		arena:     newArena(elemSize, numSlots),
		entries:   make([]heapEntry, numSlots),
		available: numSlots,
	}
	for i := uint32(0); i < numSlots; i++ {
		a.entries[i] = heapEntry{state: entryStateFree, addr: a.arena.slotAddr(i)}
	}
	for i := int(numSlots)/2 - 1; i >= 0; i-- {
		a.siftDown(uint32(i), numSlots)
	}
	return a
}

func (a *HeapAllocator) siftUp(i uint32) {
	for i > 0 {
		parent := (i - 1) / 2
		if a.entries[parent].state >= a.entries[i].state {
			return
		}
		a.entries[parent], a.entries[i] = a.entries[i], a.entries[parent]
		i = parent
	}
}

func (a *HeapAllocator) siftDown(i uint32, size uint32) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < size && a.entries[left].state > a.entries[largest].state {
			largest = left
		}
		if right < size && a.entries[right].state > a.entries[largest].state {
			largest = right
		}
		if largest == i {
			return
		}
		a.entries[i], a.entries[largest] = a.entries[largest], a.entries[i]
		i = largest
	}
}

// Allocate ...
func (a *HeapAllocator) Allocate() (unsafe.Pointer, error) {
	if a.available == 0 {
		return nil, ErrOutOfCapacity
	}
	root := a.entries[0]

	last := a.available - 1
	a.entries[0] = a.entries[last]
	a.siftDown(0, last)

	a.available = last
	a.entries[last] = heapEntry{state: entryStateUsed, addr: nullAddr}

	return a.arena.toRealAddr(root.addr), nil
}

// Deallocate ...
func (a *HeapAllocator) Deallocate(p unsafe.Pointer) {
	if p == nil || a.available >= a.arena.numSlots {
		return
	}
	a.entries[a.available] = heapEntry{state: entryStateFree, addr: a.arena.toAddr(p)}
	a.siftUp(a.available)
	a.available++
}
