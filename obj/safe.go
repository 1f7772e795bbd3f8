package obj

import "fmt"

// Safe calls fn and converts a panic into an error, returning the zero value
// alongside it. Use it at boundaries where third-party callbacks or reflect
// heavy code may blow up and the caller only wants an error.
func Safe[T any](fn func() T) (result T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			result = zero
			err = fmt.Errorf("recovered from panic: %v", rec)
		}
	}()
	return fn(), nil
}

// SafeCall runs fn and reports a panic as an error.
func SafeCall(fn func()) error {
	_, err := Safe(func() struct{} {
		fn()
		return struct{}{}
	})
	return err
}
