// Package vec provides a small growable array with an optional element
// destructor.
//
// Growth is geometric: an empty vector grows to capacity 1, a full one doubles.
// The destructor, if one was registered at construction, runs for every element
// that leaves the vector through Set, PopBack, Erase, Clear or Destroy.
package vec

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrCapacity   = errors.New("capacity smaller than length")
)

// Vec is a growable array of T.
type Vec[T any] struct {
	data   []T
	length int
	dtor   func(T)
}

// New creates a vector with the given initial capacity. dtor may be nil.
func New[T any](capacity int, dtor func(T)) *Vec[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vec[T]{data: make([]T, capacity), dtor: dtor}
}

func (v *Vec[T]) Len() int      { return v.length }
func (v *Vec[T]) Cap() int      { return len(v.data) }
func (v *Vec[T]) IsEmpty() bool { return v.length == 0 }

// Get returns the element at index.
func (v *Vec[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.length {
		return zero, fmt.Errorf("vec: get %d (len %d): %w", index, v.length, ErrOutOfRange)
	}
	return v.data[index], nil
}

// Set replaces the element at index, destroying the previous one.
func (v *Vec[T]) Set(index int, ele T) error {
	if index < 0 || index >= v.length {
		return fmt.Errorf("vec: set %d (len %d): %w", index, v.length, ErrOutOfRange)
	}
	v.destroy(v.data[index])
	v.data[index] = ele
	return nil
}

// PushBack appends ele, growing the backing array when full.
func (v *Vec[T]) PushBack(ele T) {
	v.grow()
	v.data[v.length] = ele
	v.length++
}

// PopBack removes the last element. It reports false on an empty vector.
func (v *Vec[T]) PopBack() bool {
	if v.length == 0 {
		return false
	}
	v.length--
	v.destroy(v.data[v.length])
	var zero T
	v.data[v.length] = zero
	return true
}

// Insert places ele at index, shifting later elements right. index may equal Len.
func (v *Vec[T]) Insert(index int, ele T) error {
	if index < 0 || index > v.length {
		return fmt.Errorf("vec: insert %d (len %d): %w", index, v.length, ErrOutOfRange)
	}
	v.grow()
	copy(v.data[index+1:v.length+1], v.data[index:v.length])
	v.data[index] = ele
	v.length++
	return nil
}

// Erase removes the element at index, shifting later elements left.
func (v *Vec[T]) Erase(index int) error {
	if index < 0 || index >= v.length {
		return fmt.Errorf("vec: erase %d (len %d): %w", index, v.length, ErrOutOfRange)
	}
	v.destroy(v.data[index])
	copy(v.data[index:v.length-1], v.data[index+1:v.length])
	v.length--
	var zero T
	v.data[v.length] = zero
	return nil
}

// Resize changes the capacity. Shrinking below Len is rejected.
func (v *Vec[T]) Resize(capacity int) error {
	if capacity < v.length {
		return fmt.Errorf("vec: resize to %d (len %d): %w", capacity, v.length, ErrCapacity)
	}
	data := make([]T, capacity)
	copy(data, v.data[:v.length])
	v.data = data
	return nil
}

// Clear destroys every element and sets the length to zero. Capacity is kept.
func (v *Vec[T]) Clear() {
	var zero T
	for i := 0; i < v.length; i++ {
		v.destroy(v.data[i])
		v.data[i] = zero
	}
	v.length = 0
}

// Destroy clears the vector and releases its backing array. The destructor is
// dropped, so a destroyed vector can be reused as a plain empty one.
func (v *Vec[T]) Destroy() {
	v.Clear()
	v.data = nil
	v.dtor = nil
}

// Slice returns a view of the live elements. It is invalidated by any call
// that changes the vector.
func (v *Vec[T]) Slice() []T {
	return v.data[:v.length]
}

func (v *Vec[T]) grow() {
	if v.length < len(v.data) {
		return
	}
	capacity := 1
	if len(v.data) > 0 {
		capacity = 2 * len(v.data)
	}
	// cannot fail: capacity > length
	_ = v.Resize(capacity)
}

func (v *Vec[T]) destroy(ele T) {
	if v.dtor != nil {
		v.dtor(ele)
	}
}
