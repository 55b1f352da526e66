package kopt

import (
	"errors"
	"fmt"
)

// ErrUnsupportedArity identifies a Move call with an arity other than 2 or 3.
var ErrUnsupportedArity = errors.New("kopt: unsupported move arity")

// ArityError is the panic value raised by Move for an unsupported arity.
type ArityError struct {
	Arity int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnsupportedArity, e.Arity)
}

// Unwrap lets errors.Is match ErrUnsupportedArity.
func (e *ArityError) Unwrap() error { return ErrUnsupportedArity }

// Recover runs fn and converts an *ArityError panic into a returned error.
// Any other panic is re-raised unchanged.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ae, ok := r.(*ArityError); ok {
			err = ae
			return
		}
		panic(r)
	}()
	fn()

	return nil
}
