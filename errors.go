package main

import "fmt"

// BindError is returned by Start when the listener cannot be bound,
// e.g. the port is taken or privileged.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind port %d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Cause satisfies github.com/pkg/errors.Cause.
func (e *BindError) Cause() error { return e.Err }
