// Package funcell provides a policy driven, type erased callable container.
//
// A Func holds any value invocable with one argument type and one result
// type. Small pointer free callables are stored inline in the container's
// own storage cell, everything else is boxed on the heap. Which operations a
// container supports - copy, move, swap, empty construction, dynamic type
// recovery - is declared by a user defined profile type and enforced at
// compile time: an operation a profile does not grant cannot be written
// down.
//
// A profile binds a Config to a type and embeds the grants it wants:
//
//	type SmallJobs struct {
//		funcell.AllowCopy
//		funcell.AllowMove
//	}
//
//	func (SmallJobs) FuncConfig() funcell.Config {
//		cfg := funcell.DefaultConfig()
//		cfg.Capacity = 16
//		return cfg
//	}
//
//	adder := funcell.Bind[SmallJobs, int, int](accumulator{})
//	sum := adder.Call(5)
//
// Plain functions take a fast path: BindFunc stores the function value
// directly, with no storage cell traffic and no trampoline indirection.
package funcell
