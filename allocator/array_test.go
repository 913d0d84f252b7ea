package allocator

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewArrayAllocator(t *testing.T) {
	a := NewArrayAllocator(40, 3)
	assert.Equal(t, uint32(40), a.arena.elemSize)
	assert.Equal(t, uint32(3), a.arena.numSlots)
	assert.Equal(t, 15, len(a.arena.data))
	assert.Equal(t, []bool{false, false, false}, a.used)
}

func TestArrayAllocator_Allocate_Deallocate(t *testing.T) {
	a := NewArrayAllocator(40, 3)

	p1, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, a.arena.toRealAddr(0), p1)

	p2, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, a.arena.toRealAddr(40), p2)

	p3, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, a.arena.toRealAddr(80), p3)
	assert.Equal(t, []bool{true, true, true}, a.used)

	p4, err := a.Allocate()
	assert.Equal(t, ErrOutOfCapacity, err)
	assert.Nil(t, p4)

	a.Deallocate(p2)
	assert.Equal(t, []bool{true, false, true}, a.used)

	p5, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, p2, p5)
	assert.Equal(t, []bool{true, true, true}, a.used)
}

func TestArrayAllocator_FirstFit(t *testing.T) {
	a := NewArrayAllocator(8, 4)

	p1, _ := a.Allocate()
	p2, _ := a.Allocate()
	p3, _ := a.Allocate()

	a.Deallocate(p3)
	a.Deallocate(p1)
	assert.Equal(t, []bool{false, true, false, false}, a.used)

	p4, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, p1, p4)

	p5, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, p3, p5)

	_ = p2
}

func TestArrayAllocator_SlotsDistinct(t *testing.T) {
	a := NewArrayAllocator(8, 4)

	values := make(map[*uint64]uint64)
	for i := uint64(0); i < 4; i++ {
		p, err := a.Allocate()
		assert.Nil(t, err)
		slot := (*uint64)(p)
		*slot = 1000 + i
		values[slot] = 1000 + i
	}
	assert.Equal(t, 4, len(values))

	for slot, expected := range values {
		assert.Equal(t, expected, *slot)
	}
}
