package assistant

import "fmt"

// ArgumentCountError reports a command invoked with the wrong number of arguments.
type ArgumentCountError struct {
	Want    int
	Got     int
	Message string
}

func (e *ArgumentCountError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}

// exactArgs fails unless there are exactly n arguments.
func exactArgs(args []string, n int) error {
	if len(args) != n {
		return &ArgumentCountError{Want: n, Got: len(args)}
	}
	return nil
}

// minArgs fails if there are fewer than n arguments. Surplus arguments are ignored.
func minArgs(args []string, n int) error {
	if len(args) < n {
		return &ArgumentCountError{Want: n, Got: len(args)}
	}
	return nil
}
