package allocator

import "unsafe"

const chunkLinkSize = uint32(unsafe.Sizeof(uintptr(0)))

// chunkHead is laid over a chunk's first word while the chunk is on the free
// list; once the chunk is allocated the same bytes belong to the caller.
type chunkHead struct {
	next uintptr
}

// BlockAllocator ...
type BlockAllocator struct {
	elemSize       uint32
	chunksPerBlock uint32
	head           uintptr
	blocks         [][]uint64 // keeps requested blocks reachable
}

var _ Allocator = &BlockAllocator{}

// NewBlockAllocator ...
func NewBlockAllocator(elemSize uint32, chunksPerBlock uint32) (*BlockAllocator, error) {
	if chunksPerBlock == 0 {
		panic("ChunksPerBlock must > 0")
	}
	if elemSize < chunkLinkSize {
		return nil, ErrElemTooSmall
	}
	return &BlockAllocator{
		elemSize:       elemSize,
		chunksPerBlock: chunksPerBlock,
	}, nil
}

func (a *BlockAllocator) allocateBlock() {
	numWords := (uint64(a.elemSize)*uint64(a.chunksPerBlock) + 7) >> 3
	block := make([]uint64, numWords)
	a.blocks = append(a.blocks, block)

	base := uintptr(unsafe.Pointer(&block[0]))
	for i := uint32(0); i < a.chunksPerBlock; i++ {
		chunk := (*chunkHead)(unsafe.Pointer(base + uintptr(i)*uintptr(a.elemSize)))
		if i+1 == a.chunksPerBlock {
			chunk.next = 0
		} else {
			chunk.next = base + uintptr(i+1)*uintptr(a.elemSize)
		}
	}
	a.head = base
}

func (a *BlockAllocator) contentOfList() []uintptr {
	var result []uintptr
	for p := a.head; p != 0; p = (*chunkHead)(unsafe.Pointer(p)).next {
		result = append(result, p)
	}
	return result
}

// Allocate ...
func (a *BlockAllocator) Allocate() (unsafe.Pointer, error) {
	if a.head == 0 {
		a.allocateBlock()
	}
	p := unsafe.Pointer(a.head)
	a.head = (*chunkHead)(p).next
	return p, nil
}

// Deallocate ...
func (a *BlockAllocator) Deallocate(p unsafe.Pointer) {
	chunk := (*chunkHead)(p)
	chunk.next = a.head
	a.head = uintptr(p)
}
