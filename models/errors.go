package models

import "fmt"

// MalformedInputError - a payload field has the wrong shape
type MalformedInputError struct {
	Field string
	Err   error
}

func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed %s", e.Field)
	}
	return fmt.Sprintf("malformed %s: %v", e.Field, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// UnexpectedError - anything else that went wrong while building a file
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil {
		return "unexpected error"
	}
	return e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
