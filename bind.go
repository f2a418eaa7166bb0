package funcell

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/funcell/funcell/internal/cell"
)

// HeapDisallowedError reports a callable that neither fits the configured
// inline capacity nor may be boxed on the heap. It is delivered by panic
// from Bind; StoredInline gives callers the ahead-of-time check.
type HeapDisallowedError struct {
	Profile  string
	Callable reflect.Type
	Size     uintptr
	Capacity uintptr
}

func (e *HeapDisallowedError) Error() string {
	return fmt.Sprintf(
		"funcell: %s (%d bytes) does not fit into the %d byte inline capacity of profile %s and heap fallback is disabled",
		e.Callable, e.Size, e.Capacity, e.Profile,
	)
}

// ptrCallable constrains PF to be the pointer type of F, implementing
// Callable through a pointer receiver.
type ptrCallable[F, A, R any] interface {
	*F
	Callable[A, R]
}

// Bind constructs a container holding a copy of callable. The placement
// rule decides between the inline buffer and the heap at this point; the
// trampoline and the dispatcher for the concrete type are bound here and
// referenced for the rest of the container's life.
//
// Binding a callable that does not fit inline under a profile without heap
// fallback panics with a HeapDisallowedError.
func Bind[P Profile, A, R, F any, PF ptrCallable[F, A, R]](callable F) *Func[P, A, R] {
	f := new(Func[P, A, R])
	BindInto[P, A, R, F, PF](f, callable)
	return f
}

// BindInto binds callable into an existing container, destroying the
// container's previous contents first. This is the allocation free variant
// of Bind for inline eligible callables.
func BindInto[P Profile, A, R, F any, PF ptrCallable[F, A, R]](f *Func[P, A, R], callable F) {
	info := profileOf[P]()
	cfg := info.Config

	f.Reset()

	if inlineEligible[F](cfg) {
		cell.Emplace(&f.data, callable)

		f.invoke = inlineInvoker[F, PF, A, R]

		if info.destroyOnly {
			f.ops = destroyOnlyInline[F]
		} else {
			f.ops = inlineOps[F]
		}

		return
	}

	if !cfg.AllowHeap {
		panic(&HeapDisallowedError{
			Profile:  info.Name,
			Callable: reflect.TypeFor[F](),
			Size:     unsafe.Sizeof(callable),
			Capacity: cfg.Capacity,
		})
	}

	cell.Box(&f.data, callable)

	f.invoke = heapInvoker[F, PF, A, R]

	if info.destroyOnly {
		f.ops = destroyOnlyHeap[F]
	} else {
		f.ops = heapOps[F]
	}
}

// BindFunc constructs a container from a plain function. With FuncFastPath
// set the function value is stored directly, skipping both the storage
// cell and the trampoline; plain functions therefore bind regardless of
// the configured inline capacity. Binding a nil function yields an empty
// container.
func BindFunc[P Profile, A, R any](fn func(A) R) *Func[P, A, R] {
	f := new(Func[P, A, R])
	BindFuncInto(f, fn)
	return f
}

// BindFuncInto is BindFunc into an existing container.
func BindFuncInto[P Profile, A, R any](f *Func[P, A, R], fn func(A) R) {
	info := profileOf[P]()

	if fn == nil {
		f.Reset()
		return
	}

	if !info.Config.FuncFastPath {
		// func values carry a pointer, the regular path boxes them
		BindInto[P, A, R](f, fnAdapter[A, R]{fn: fn})
		return
	}

	f.Reset()

	f.direct = fn
	f.ops = nil
}

// Empty returns an explicitly empty container. Only profiles embedding
// AllowEmpty construct empty.
func Empty[P EmptyProfile, A, R any]() *Func[P, A, R] {
	profileOf[P]()

	return &Func[P, A, R]{ops: noopOps}
}

// inlineInvoker is the trampoline for an inline stored F: reinterpret the
// cell as F, invoke it with the forwarded argument.
func inlineInvoker[F any, PF ptrCallable[F, A, R], A, R any](data *cell.Cell, arg A) R {
	return PF(cell.View[F](data)).Invoke(arg)
}

// heapInvoker is the trampoline for a heap boxed F.
func heapInvoker[F any, PF ptrCallable[F, A, R], A, R any](data *cell.Cell, arg A) R {
	return PF(cell.Unbox[F](data)).Invoke(arg)
}

// fnAdapter lifts a plain function into a Callable for profiles that have
// the fast path disabled.
type fnAdapter[A, R any] struct {
	fn func(A) R
}

func (a *fnAdapter[A, R]) Invoke(arg A) R {
	return a.fn(arg)
}
