package use

// Err creates a tool usage error: bad arguments, missing type and the like.
// Generation diagnostics attached to source code live in the struc package.
func Err(message string) *Error {
	return &Error{message: message}
}

type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}
