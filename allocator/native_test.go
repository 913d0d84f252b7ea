package allocator

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewNativeAllocator(t *testing.T) {
	a := NewNativeAllocator(20)
	assert.Equal(t, uint32(3), a.numWords)
	assert.Equal(t, 0, len(a.live))
}

func TestNativeAllocator_Allocate_Deallocate(t *testing.T) {
	a := NewNativeAllocator(16)

	p1, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, 1, len(a.live))

	p2, err := a.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(a.live))
	assert.NotEqual(t, p1, p2)

	*(*uint64)(p1) = 11
	*(*uint64)(p2) = 22
	assert.Equal(t, uint64(11), *(*uint64)(p1))
	assert.Equal(t, uint64(22), *(*uint64)(p2))

	a.Deallocate(p1)
	assert.Equal(t, 1, len(a.live))

	a.Deallocate(p2)
	assert.Equal(t, 0, len(a.live))
}
