package funcell

import "fmt"

// The profiles below span the capability matrix exercised by the tests.

// stdProfile: 16 bytes inline, copy + move, every call checked for
// emptiness.
type stdProfile struct {
	AllowCopy
	AllowMove
}

func (stdProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Capacity = 16
	cfg.CheckEmpty = true
	return cfg
}

// heapOnlyProfile: no inline capacity at all, move only. Everything it
// binds lives on the heap.
type heapOnlyProfile struct {
	AllowMove
}

func (heapOnlyProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Capacity = 0
	cfg.Copyable = false
	return cfg
}

// emptyProfile: may be constructed empty, every call checked.
type emptyProfile struct {
	AllowMove
	AllowEmpty
}

func (emptyProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Copyable = false
	cfg.CanBeEmpty = true
	cfg.CheckEmpty = true
	return cfg
}

// inlineOnlyProfile: generous inline capacity, heap fallback disabled.
type inlineOnlyProfile struct {
	AllowMove
}

func (inlineOnlyProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Capacity = 48
	cfg.Copyable = false
	cfg.AllowHeap = false
	return cfg
}

// inplaceProfile grants nothing: the value is not relocatable, the bound
// dispatcher is a plain destroyer.
type inplaceProfile struct{}

func (inplaceProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Copyable = false
	cfg.Movable = false
	return cfg
}

// typeInfoProfile enables dynamic type recovery.
type typeInfoProfile struct {
	AllowMove
	AllowTypeInfo
}

func (typeInfoProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Copyable = false
	cfg.TypeInfo = true
	return cfg
}

// constCallProfile declares invocation safe on shared references.
type constCallProfile struct {
	AllowCopy
	AllowMove
	AllowConstCall
}

func (constCallProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.ConstCall = true
	return cfg
}

// noFastPathProfile routes plain functions through the regular erasure
// path.
type noFastPathProfile struct {
	AllowCopy
	AllowMove
}

func (noFastPathProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.FuncFastPath = false
	return cfg
}

// mismatchedProfile grants copy but denies it in the Config. Using it must
// panic at registration.
type mismatchedProfile struct {
	AllowCopy
	AllowMove
}

func (mismatchedProfile) FuncConfig() Config {
	cfg := DefaultConfig()
	cfg.Copyable = false
	return cfg
}

// counter is a small pointer free stateful callable.
type counter struct {
	total int
}

func (c *counter) Invoke(delta int) int {
	c.total += delta
	return c.total
}

// doubler is the stateless equivalent of the plain function double.
type doubler struct{}

func (d *doubler) Invoke(x int) int {
	return x * 2
}

func double(x int) int {
	return x * 2
}

// big is a pointer free callable of roughly 100 bytes.
type big struct {
	result int
	pad    [96]byte
}

func (b *big) Invoke(struct{}) int {
	return b.result
}

// journal records the observable behavior of tracked callables.
type journal struct {
	lines []string
}

func (j *journal) logf(format string, args ...any) {
	j.lines = append(j.lines, fmt.Sprintf(format, args...))
}

// tracked is a stateful callable of roughly 100 bytes that reports every
// invocation to its journal.
type tracked struct {
	journal *journal
	name    string
	pad     [100]byte
}

func (tr *tracked) Invoke(struct{}) string {
	tr.journal.logf("%s() called", tr.name)
	return tr.name
}
