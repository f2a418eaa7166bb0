package refl

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPointers(t *testing.T) {
	type flat struct {
		A int
		B [4]float64
		C complex128
	}

	type nested struct {
		Flat flat
		Name string
	}

	require.False(t, HasPointers(reflect.TypeFor[int]()))
	require.False(t, HasPointers(reflect.TypeFor[flat]()))
	require.False(t, HasPointers(reflect.TypeFor[[8]flat]()))
	require.False(t, HasPointers(reflect.TypeFor[struct{}]()))

	require.True(t, HasPointers(reflect.TypeFor[string]()))
	require.True(t, HasPointers(reflect.TypeFor[*int]()))
	require.True(t, HasPointers(reflect.TypeFor[[]byte]()))
	require.True(t, HasPointers(reflect.TypeFor[map[int]int]()))
	require.True(t, HasPointers(reflect.TypeFor[func()]()))
	require.True(t, HasPointers(reflect.TypeFor[nested]()))

	// arrays of length zero carry nothing
	require.False(t, HasPointers(reflect.TypeFor[[0]string]()))
}

func TestAbiTypePointer(t *testing.T) {
	a := AbiTypePointer(reflect.TypeFor[int]())
	b := AbiTypePointer(reflect.TypeFor[int]())
	c := AbiTypePointer(reflect.TypeFor[uint]())

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}
