package assert

import "fmt"

// Unreachable marks dispatch branches that must never be taken for a given
// capability set. Reaching one is a defect in the container itself, not a
// user facing error.
func Unreachable(format string, args ...any) {
	panic(fmt.Sprintf("unreachable: "+format, args...))
}
