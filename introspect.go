package funcell

import (
	"reflect"

	"github.com/funcell/funcell/internal/cell"
)

// TypeOf returns the dynamic type of the bound callable, or nil for an
// unbound container. A plain function bound through the fast path reports
// its function type.
func TypeOf[P TypeInfoProfile, A, R any](f *Func[P, A, R]) reflect.Type {
	if !f.Bound() {
		return nil
	}

	if f.direct != nil {
		return reflect.TypeOf(f.direct)
	}

	return f.ops(opTypeInfo, &f.data, nil)
}

// Target returns a pointer to the live callable if its dynamic type is
// exactly F, nil otherwise. Mutations through the returned pointer are
// observed by subsequent calls. Fast path containers have no addressable
// target and always return nil.
func Target[F any, P TypeInfoProfile, A, R any](f *Func[P, A, R]) *F {
	if !f.Bound() || f.direct != nil {
		return nil
	}

	if f.ops(opTypeInfo, &f.data, nil) != reflect.TypeFor[F]() {
		return nil
	}

	var out cell.Cell
	f.ops(opGetPtr, &f.data, &out)

	return cell.Unbox[F](&out)
}
