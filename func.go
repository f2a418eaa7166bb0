package funcell

import (
	"errors"

	"github.com/funcell/funcell/internal/cell"
)

// ErrEmptyCall is delivered by panic when an empty or moved-from container
// is invoked under a profile with CheckEmpty set. It is a recoverable,
// distinguished failure, not a process fault.
var ErrEmptyCall = errors.New("funcell: call on empty or moved-from container")

// Callable is the contract a bound value fulfills. Invoke uses a pointer
// receiver so stateful callables can mutate their own state across calls.
type Callable[A, R any] interface {
	Invoke(arg A) R
}

// Func holds one value invocable with an A and returning an R, configured
// by the profile P.
//
// The zero value is an empty container. Func values must not be duplicated
// by plain assignment - a shallow copy would alias the heap slot - which go
// vet reports through the embedded lock guard; use Copy, Move and Swap.
type Func[P Profile, A, R any] struct {
	noCopy noCopy

	data cell.Cell

	// at most one of invoke and direct is set while the container is
	// bound. invoke is the trampoline indirection through the storage
	// cell, direct is the plain function fast path which needs neither the
	// cell nor a dispatcher.
	invoke func(data *cell.Cell, arg A) R
	direct func(arg A) R

	ops opRef
}

// Bound reports whether the container currently holds a callable. An empty
// and a moved-from container both report false.
func (f *Func[P, A, R]) Bound() bool {
	return f.invoke != nil || f.direct != nil
}

// Call invokes the bound callable.
//
// With CheckEmpty set in the profile's Config, calling an unbound container
// panics with ErrEmptyCall. Without it the behavior matches calling a nil
// function value.
func (f *Func[P, A, R]) Call(arg A) R {
	var p P
	if p.FuncConfig().CheckEmpty && !f.Bound() {
		panic(ErrEmptyCall)
	}

	if f.direct != nil {
		return f.direct(arg)
	}

	return f.invoke(&f.data, arg)
}

// CallShared is the invocation variant a profile declares safe on shared
// references. It behaves exactly like Call; its presence is gated on the
// AllowConstCall grant so that the sharing contract is part of the
// profile's type.
func CallShared[P ConstCallProfile, A, R any](f *Func[P, A, R], arg A) R {
	return f.Call(arg)
}

// Reset destroys the bound callable and leaves the container empty. It is
// the deterministic end of the callable's lifetime and is idempotent, also
// on moved-from containers.
func (f *Func[P, A, R]) Reset() {
	if f.ops != nil {
		f.ops(opDestroy, &f.data, nil)
	}

	f.invoke = nil
	f.direct = nil
	f.ops = noopOps
}

// moveCell relocates the cell contents into target through the bound
// dispatcher. A nil dispatcher means the cell is vacant (fast path or zero
// value), there is nothing to relocate then.
func (f *Func[P, A, R]) moveCell(target *cell.Cell) {
	if f.ops == nil {
		return
	}

	f.ops(opMove, &f.data, target)
}

func (f *Func[P, A, R]) copyCell(target *cell.Cell) {
	if f.ops == nil {
		return
	}

	f.ops(opCopy, &f.data, target)
}
