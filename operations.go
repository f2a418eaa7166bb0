package funcell

import "github.com/funcell/funcell/internal/cell"

// Copy returns an independent duplicate of f. The source is unchanged;
// where the bound callable carries state, the duplicate's state evolves on
// its own from here.
func Copy[P CopyProfile, A, R any](f *Func[P, A, R]) *Func[P, A, R] {
	duplicate := new(Func[P, A, R])
	CopyInto(duplicate, f)
	return duplicate
}

// CopyInto copy-assigns src into dst. dst's previous contents are
// destroyed first, src is unchanged.
func CopyInto[P CopyProfile, A, R any](dst, src *Func[P, A, R]) {
	if dst == src {
		return
	}

	dst.Reset()

	src.copyCell(&dst.data)
	dst.invoke = src.invoke
	dst.direct = src.direct
	dst.ops = src.ops
}

// Move transfers f's contents into a fresh container. f is left moved-from:
// behaviorally empty, safe to reset, rebind or move into.
func Move[P MoveProfile, A, R any](f *Func[P, A, R]) *Func[P, A, R] {
	target := new(Func[P, A, R])
	MoveInto(target, f)
	return target
}

// MoveInto move-assigns src into dst. dst's previous contents are destroyed
// first, src is left moved-from.
func MoveInto[P MoveProfile, A, R any](dst, src *Func[P, A, R]) {
	if dst == src {
		return
	}

	dst.Reset()

	src.moveCell(&dst.data)
	dst.invoke = src.invoke
	dst.direct = src.direct
	dst.ops = src.ops

	src.invoke = nil
	src.direct = nil
	src.ops = noopOps
}

// Swap exchanges the contents of a and b. Cell contents are not
// independently relocatable data, so the exchange is a three-way rotation
// through a temporary cell in which every step runs through the dispatcher
// owning the value being relocated.
func Swap[P MoveProfile, A, R any](a, b *Func[P, A, R]) {
	if a == b {
		return
	}

	aOps, bOps := a.ops, b.ops

	var tmp cell.Cell
	b.moveCell(&tmp)
	a.moveCell(&b.data)
	if bOps != nil {
		bOps(opMove, &tmp, &a.data)
	}

	a.invoke, b.invoke = b.invoke, a.invoke
	a.direct, b.direct = b.direct, a.direct
	a.ops, b.ops = bOps, aOps
}
