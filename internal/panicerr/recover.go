// Package panicerr converts abnormal goroutine exits into ordinary errors
// at a driver boundary.
package panicerr

// Recover runs f in a new goroutine wrapped in defer logic that reports any
// panic or runtime.Goexit as a non-nil error.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
