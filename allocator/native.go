package allocator

import "unsafe"

// NativeAllocator ...
type NativeAllocator struct {
	numWords uint32
	live     map[unsafe.Pointer][]uint64
}

var _ Allocator = &NativeAllocator{}

// NewNativeAllocator ...
func NewNativeAllocator(elemSize uint32) *NativeAllocator {
	if elemSize == 0 {
		panic("ElemSize must > 0")
	}
	return &NativeAllocator{
		numWords: (elemSize + 7) >> 3,
		live:     map[unsafe.Pointer][]uint64{},
	}
}

// Allocate ...
func (a *NativeAllocator) Allocate() (unsafe.Pointer, error) {
	buf := make([]uint64, a.numWords)
	p := unsafe.Pointer(&buf[0])
	// the storage must stay reachable until Deallocate
	a.live[p] = buf
	return p, nil
}

// Deallocate ...
func (a *NativeAllocator) Deallocate(p unsafe.Pointer) {
	delete(a.live, p)
}
