package errors

import "fmt"

// Catch recovers an Exception raised by Rethrow and stores it in *errp.
// It must be called directly by defer. Panics that do not carry an Exception
// are re-raised unchanged.
//
// Example:
//
//	func load(name string) (err error) {
//	    defer errors.Catch(&err)
//	    parse(name) // may call exc.Rethrow()
//	    return nil
//	}
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	exc, ok := r.(Exception)
	if !ok {
		panic(r)
	}
	if errp == nil {
		panic(fmt.Sprintf("errors: Catch called with nil target while recovering %v", exc))
	}
	*errp = exc
}
