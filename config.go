package funcell

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Config describes the policy of a container family. It is pure data: a
// plain comparable struct, copied freely and compared with ==. The Config a
// profile returns is fixed for the lifetime of every Func instantiated from
// that profile.
type Config struct {
	// Capacity is the inline capacity in bytes. Values larger than this are
	// boxed on the heap. Must not exceed the physical cell capacity.
	Capacity uintptr

	// Alignment is the alignment guaranteed for inline values. A value is
	// only placed inline when its own alignment divides this one. Must be a
	// power of two.
	Alignment uintptr

	// AllowConversion records that invocation results may be converted to
	// the declared result type. The Go container instantiates the result
	// type exactly, so the flag is carried as configuration data only.
	AllowConversion bool

	// NoPanicCall declares that bound callables do not panic when invoked.
	NoPanicCall bool

	// NoPanicMove and NoPanicCopy declare the same for relocation and
	// duplication. Both hold for every Go value, the flags are carried for
	// structural comparison of configurations.
	NoPanicMove bool
	NoPanicCopy bool

	// ConstCall gates the presence of CallShared, the invocation variant
	// declared safe on shared references.
	ConstCall bool

	// CanBeEmpty permits empty construction. CheckEmpty additionally guards
	// every invocation with an emptiness check that panics with
	// ErrEmptyCall. A container with both unset has no observable empty
	// state, invoking it after a move is a caller bug.
	CanBeEmpty bool
	CheckEmpty bool

	// AllowHeap permits boxing callables that are not eligible for inline
	// storage. With AllowHeap unset, binding an oversized callable panics
	// at construction.
	AllowHeap bool

	// TypeInfo enables recovery of the dynamic type of the bound callable.
	TypeInfo bool

	// FuncFastPath stores a plain func(A) R directly next to the storage
	// cell, removing one indirection for the common plain function case.
	FuncFastPath bool

	// Copyable and Movable enable duplication and relocation. They must
	// agree with the grants embedded in the profile carrying this Config.
	Copyable bool
	Movable  bool
}

// DefaultConfig returns the baseline configuration: 32 bytes of inline
// capacity, word alignment, heap fallback, fast path, copy and move
// enabled, no empty state, no introspection.
func DefaultConfig() Config {
	return Config{
		Capacity:        32,
		Alignment:       8,
		AllowConversion: true,
		NoPanicMove:     true,
		AllowHeap:       true,
		FuncFastPath:    true,
		Copyable:        true,
		Movable:         true,
	}
}

// WithNoPanicCall returns a copy of the config with the no-panic invocation
// requirement replaced.
func (c Config) WithNoPanicCall(state bool) Config {
	modified := c
	modified.NoPanicCall = state
	return modified
}

// WithConstCall returns a copy of the config with the shared invocation
// requirement replaced.
func (c Config) WithConstCall(state bool) Config {
	modified := c
	modified.ConstCall = state
	return modified
}

// HasEmptyState reports whether containers of this config have an
// observable empty state.
func (c Config) HasEmptyState() bool {
	return c.CanBeEmpty || c.CheckEmpty
}

// Hash returns a stable fingerprint of the config, used by the profile
// registry for logging and duplicate detection.
func (c Config) Hash() uint64 {
	var scratch [18]byte

	binary.LittleEndian.PutUint64(scratch[0:], uint64(c.Capacity))
	binary.LittleEndian.PutUint64(scratch[8:], uint64(c.Alignment))

	var bits uint16
	for idx, flag := range []bool{
		c.AllowConversion,
		c.NoPanicCall, c.NoPanicMove, c.NoPanicCopy,
		c.ConstCall,
		c.CanBeEmpty, c.CheckEmpty,
		c.AllowHeap,
		c.TypeInfo,
		c.FuncFastPath,
		c.Copyable, c.Movable,
	} {
		if flag {
			bits |= 1 << idx
		}
	}

	binary.LittleEndian.PutUint16(scratch[16:], bits)

	return xxhash.Sum64(scratch[:])
}
