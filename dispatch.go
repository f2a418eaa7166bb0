package funcell

import (
	"reflect"
	"unsafe"

	"github.com/funcell/funcell/internal/assert"
	"github.com/funcell/funcell/internal/cell"
)

// opCode selects one of the generated per-type operations of a dispatcher.
type opCode uint8

const (
	opDestroy opCode = iota
	opMove
	opCopy
	opGetPtr
	opTypeInfo
)

// opRef is the operation reference bound once per concrete callable type at
// construction. All later lifecycle operations of a container go through
// this single reference, the container never re-examines the concrete type.
// The reflect.Type result is non-nil only for opTypeInfo.
type opRef func(op opCode, src, dst *cell.Cell) reflect.Type

// inlineOps is the dispatcher for an inline stored F.
func inlineOps[F any](op opCode, src, dst *cell.Cell) reflect.Type {
	var zero F
	size := unsafe.Sizeof(zero)

	switch op {
	case opDestroy:
		src.ZeroInline(size)

	case opMove:
		cell.MoveBytes(src, dst, size)

	case opCopy:
		// inline values are pointer free, the raw byte copy is exactly the
		// language's copy semantics
		cell.CopyBytes(src, dst, size)

	case opGetPtr:
		dst.SetPtr(src.InlineAddr())

	case opTypeInfo:
		return reflect.TypeFor[F]()
	}

	return nil
}

// heapOps is the dispatcher for a heap boxed F.
func heapOps[F any](op opCode, src, dst *cell.Cell) reflect.Type {
	switch op {
	case opDestroy:
		src.DropPtr()

	case opMove:
		cell.MovePtr(src, dst)

	case opCopy:
		cell.Box(dst, *cell.Unbox[F](src))

	case opGetPtr:
		dst.SetPtr(src.Ptr())

	case opTypeInfo:
		return reflect.TypeFor[F]()
	}

	return nil
}

// destroyOnlyInline is bound instead of inlineOps when the profile grants
// neither move, copy nor introspection. The value is purely in-place, every
// branch but destruction must never be taken.
func destroyOnlyInline[F any](op opCode, src, _ *cell.Cell) reflect.Type {
	if op != opDestroy {
		assert.Unreachable("op %d dispatched on an in-place container", op)
	}

	var zero F
	src.ZeroInline(unsafe.Sizeof(zero))

	return nil
}

// destroyOnlyHeap is the heap counterpart of destroyOnlyInline.
func destroyOnlyHeap[F any](op opCode, src, _ *cell.Cell) reflect.Type {
	if op != opDestroy {
		assert.Unreachable("op %d dispatched on an in-place container", op)
	}

	src.DropPtr()

	return nil
}

// noopOps is bound to empty and moved-from containers so that reset and
// rebinding stay cheap no-ops.
func noopOps(opCode, *cell.Cell, *cell.Cell) reflect.Type {
	return nil
}
