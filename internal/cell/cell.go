// Package cell implements the raw storage of an erased callable. It is the
// only place in the module, next to the dispatcher generation, that is
// allowed to reinterpret memory.
package cell

import (
	"math"
	"unsafe"
)

// Capacity is the physical size of the inline buffer in bytes. Profiles may
// configure any logical inline capacity up to this value.
const Capacity = 64

const words = Capacity / 8

// Cell is the storage of a single erased callable.
//
// Go cannot overlay a collector-visible pointer with raw bytes, so instead of
// a union the cell keeps both slots side by side. At most one slot is live at
// a time and which one it is, is never recorded here - it is implied by the
// dispatcher that populated the cell. The cell has no lifetime logic of its
// own; vacating it is always the job of the bound dispatcher.
type Cell struct {
	// buf is a uint64 array on purpose: the collector treats the memory as
	// pointer free and the 8 byte alignment comes for free. Only pointer
	// free values may be placed here.
	buf [words]uint64

	// ptr parks a heap allocated value. Unlike buf it is scanned by the
	// collector, so the allocation stays alive while the cell does.
	ptr unsafe.Pointer
}

type buf *[math.MaxInt32]byte

func rawCopy(to, from unsafe.Pointer, size uintptr) {
	dst := (*buf(to))[:size]
	src := (*buf(from))[:size]
	copy(dst, src)
}

// View reinterprets the inline buffer as a T.
func View[T any](c *Cell) *T {
	return (*T)(unsafe.Pointer(&c.buf))
}

// Emplace constructs a copy of value directly in the inline buffer.
func Emplace[T any](c *Cell, value T) {
	*View[T](c) = value
}

// Box places value on the heap and parks the allocation in the pointer slot.
func Box[T any](c *Cell, value T) {
	boxed := new(T)
	*boxed = value
	c.ptr = unsafe.Pointer(boxed)
}

// Unbox reinterprets the pointer slot as a *T.
func Unbox[T any](c *Cell) *T {
	return (*T)(c.ptr)
}

// Ptr returns the raw pointer slot.
func (c *Cell) Ptr() unsafe.Pointer {
	return c.ptr
}

// SetPtr overwrites the raw pointer slot.
func (c *Cell) SetPtr(p unsafe.Pointer) {
	c.ptr = p
}

// InlineAddr returns the address of the inline buffer, i.e. the address of
// the value currently emplaced in it.
func (c *Cell) InlineAddr() unsafe.Pointer {
	return unsafe.Pointer(&c.buf)
}

// MoveBytes relocates size bytes of inline storage from src to dst and
// clears the source. Valid for pointer free values only, where a raw byte
// relocation is exactly the language's move.
func MoveBytes(src, dst *Cell, size uintptr) {
	rawCopy(dst.InlineAddr(), src.InlineAddr(), size)
	src.ZeroInline(size)
}

// CopyBytes duplicates size bytes of inline storage from src into dst. For
// pointer free values a raw byte copy is exactly the language's copy
// semantics.
func CopyBytes(src, dst *Cell, size uintptr) {
	rawCopy(dst.InlineAddr(), src.InlineAddr(), size)
}

// MovePtr transfers ownership of the heap slot from src to dst and nulls
// the source.
func MovePtr(src, dst *Cell) {
	dst.ptr = src.ptr
	src.ptr = nil
}

// ZeroInline clears the first size bytes of the inline buffer.
func (c *Cell) ZeroInline(size uintptr) {
	b := (*buf(c.InlineAddr()))[:size]
	clear(b)
}

// DropPtr releases the heap slot so the collector can reclaim the
// allocation.
func (c *Cell) DropPtr() {
	c.ptr = nil
}
