// Package refl contains the reflection helpers used to classify callable
// types and to key the profile registry.
package refl

import (
	"iter"
	"reflect"
	"unsafe"
)

// IterFields iterates over the fields of a struct type.
func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// HasPointers reports whether a value of the given type contains memory the
// garbage collector needs to scan, e.g. by having a field of type *T, a
// string, a slice, a map, a chan or a func value, directly or through
// nested fields and array elements.
func HasPointers(ty reflect.Type) bool {
	switch ty.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false

	case reflect.Array:
		return ty.Len() > 0 && HasPointers(ty.Elem())

	case reflect.Struct:
		for field := range IterFields(ty) {
			if HasPointers(field.Type) {
				return true
			}
		}

		return false

	default:
		return true
	}
}

// AbiTypePointer returns a unique identity key for the given type.
//
// A reflect.Type is backed by an *rType. The rType contains an abi.Type as
// its first value, so the data word of the interface identifies the type
// uniquely for the lifetime of the process.
func AbiTypePointer(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	return (*eface)(unsafe.Pointer(&t)).val
}
