package funcell

import (
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/funcell/funcell/internal/refl"
)

// pointerFree caches the reflect walk per concrete callable type, so that
// binding stays allocation free after the first use of a type.
var pointerFree atomic.Pointer[map[unsafe.Pointer]bool]

func init() {
	pointerFree.Store(&map[unsafe.Pointer]bool{})
}

func pointerFreeOf[F any]() bool {
	ty := reflect.TypeFor[F]()
	key := refl.AbiTypePointer(ty)

	if cached, ok := (*pointerFree.Load())[key]; ok {
		return cached
	}

	value := !refl.HasPointers(ty)

	for {
		previous := pointerFree.Load()
		next := maps.Clone(*previous)
		next[key] = value

		if pointerFree.CompareAndSwap(previous, &next) {
			return value
		}
	}
}

// inlineEligible implements the placement rule. A value is stored inline
// when it fits the configured capacity, its alignment divides the
// configured alignment, and it is free of pointers.
//
// The inline buffer is memory the collector does not scan, so only pointer
// free values can safely live there. Everything else takes the heap slot,
// which the collector does see.
func inlineEligible[F any](cfg Config) bool {
	var zero F

	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)

	return size <= cfg.Capacity &&
		align <= cfg.Alignment &&
		cfg.Alignment%align == 0 &&
		pointerFreeOf[F]()
}

// StoredInline reports whether a callable of type F binds into the inline
// buffer of a container with profile P. A container holding an inline value
// performs no heap allocation across its whole lifecycle; callers that need
// to reason about allocation behavior can check this ahead of binding.
func StoredInline[P Profile, F any]() bool {
	return inlineEligible[F](profileOf[P]().Config)
}
