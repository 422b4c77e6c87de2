package cmd

import "fmt"

// ExitError carries the process exit status for an error returned by
// Execute. Silent errors were already reported on stderr.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// usageError marks bad flags, config or input, which exit with status 2.
func usageError(err error) error {
	return &ExitError{Code: 2, Err: err}
}
