// Package contract checks internal invariants of the compiler pipeline.
//
// A failed check is a bug in the compiler, never a user error: it is logged
// through glog and the process is abandoned by panicking with a Violation.
package contract

import (
	"fmt"

	"github.com/golang/glog"
)

const (
	failMsg   = "A failure has occurred"
	assertMsg = "An assertion has failed"
)

// Violation is the panic value raised by a failed check.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return v.Msg
}

// Failf unconditionally abandons the current compilation.
func Failf(msg string, args ...interface{}) {
	failfast(fmt.Sprintf("%v: %v", failMsg, fmt.Sprintf(msg, args...)))
}

// Assertf fails if cond is false.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", assertMsg, fmt.Sprintf(msg, args...)))
	}
}

// Recover turns a Violation raised while running fn into an error.
// Any other panic is propagated.
func Recover(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			err = v
		}
	}()
	fn()
	return nil
}

func failfast(msg string) {
	glog.Errorf("fatal: %v", msg)
	panic(&Violation{Msg: msg})
}
