package funcell

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeOf_Inline(t *testing.T) {
	f := Bind[typeInfoProfile, int, int](counter{})

	require.Equal(t, reflect.TypeFor[counter](), TypeOf(f))
}

func TestTypeOf_Heap(t *testing.T) {
	f := Bind[typeInfoProfile, struct{}, int](big{result: 1})

	require.Equal(t, reflect.TypeFor[big](), TypeOf(f))
}

func TestTypeOf_FastPath(t *testing.T) {
	f := BindFunc[typeInfoProfile, int, int](double)

	require.Equal(t, reflect.TypeFor[func(int) int](), TypeOf(f))
}

func TestTypeOf_Unbound(t *testing.T) {
	f := Bind[typeInfoProfile, int, int](counter{})
	Move(f)

	require.Nil(t, TypeOf(f))
}

func TestTarget_RecoversLiveValue(t *testing.T) {
	f := Bind[typeInfoProfile, int, int](counter{})
	f.Call(5)

	target := Target[counter](f)
	require.NotNil(t, target)
	require.Equal(t, 5, target.total)

	// mutations through the target are observed by subsequent calls
	target.total = 100
	require.Equal(t, 101, f.Call(1))
}

func TestTarget_RecoversHeapValue(t *testing.T) {
	f := Bind[typeInfoProfile, struct{}, int](big{result: 9})

	target := Target[big](f)
	require.NotNil(t, target)
	require.Equal(t, 9, target.result)
}

func TestTarget_NilOnTypeMismatch(t *testing.T) {
	f := Bind[typeInfoProfile, int, int](counter{})

	require.Nil(t, Target[doubler](f))
}

func TestTarget_NilOnFastPath(t *testing.T) {
	f := BindFunc[typeInfoProfile, int, int](double)

	require.Nil(t, Target[counter](f))
}
