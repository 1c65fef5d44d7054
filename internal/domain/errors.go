package domain

import "fmt"

// NotFoundError indicates that a prompt identifier does not resolve in storage.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("prompt %q not found", e.ID)
}

func IsNotFoundError(err error) bool {
	_, ok := err.(NotFoundError)
	return ok
}

// InvalidArgumentError indicates a malformed identifier or a missing
// collaborator, detected before any I/O happens.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return e.Reason
}

func IsInvalidArgumentError(err error) bool {
	_, ok := err.(InvalidArgumentError)
	return ok
}

// InvalidInputError indicates that the rendering pipeline was handed input it
// cannot process, such as a nil document or parameter store.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return e.Reason
}

func IsInvalidInputError(err error) bool {
	_, ok := err.(InvalidInputError)
	return ok
}
