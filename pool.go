package objpool

import (
	"errors"
	"unsafe"

	"github.com/QuangTung97/objpool/allocator"
)

// ErrInvalidSize ...
var ErrInvalidSize = errors.New("objpool: size does not match the pooled type")

// Pool ...
type Pool[T any] struct {
	alloc allocator.Allocator
}

// New ...
func New[T any](alloc allocator.Allocator) *Pool[T] {
	return &Pool[T]{
		alloc: alloc,
	}
}

// Allocate returns uninitialized storage for one T. The size must equal the
// size of T, otherwise ErrInvalidSize is returned and the wrapped allocator
// is not touched.
func (p *Pool[T]) Allocate(size uintptr) (*T, error) {
	var zero T
	if size != unsafe.Sizeof(zero) {
		return nil, ErrInvalidSize
	}

	ptr, err := p.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// Get ...
func (p *Pool[T]) Get() (*T, error) {
	var zero T
	return p.Allocate(unsafe.Sizeof(zero))
}

// Deallocate ...
func (p *Pool[T]) Deallocate(obj *T) {
	p.alloc.Deallocate(unsafe.Pointer(obj))
}
