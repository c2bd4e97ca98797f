package util

import "fmt"

// Indicates a condition that should never happen. If encountered, execution
// will halt and the resulting state is undefined.
func Assert(b bool) {
	if !b {
		panic("assertion failed")
	}
}

// Asserts that predicate is true, providing a message if it is not.
func AssertMsg(b bool, format string, args ...interface{}) {
	if !b {
		panic(fmt.Sprintf(format, args...))
	}
}

// Asserts that err is nil, panicking with the error otherwise.
func AssertNoError(err error) {
	if err != nil {
		panic(err.Error())
	}
}
