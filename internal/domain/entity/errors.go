package entity

import (
	"errors"
	"fmt"
)

// Contract errors returned by layout operations.
var (
	ErrConfiguration = errors.New("invalid layout configuration")
	ErrOccupiedIndex = errors.New("workspace index already occupied")
	ErrRange         = errors.New("index out of bounds")
	ErrIllegalState  = errors.New("illegal layout state")
	ErrInvalidWidth  = errors.New("column width must be positive")
	ErrForeignWin    = errors.New("win belongs to another layout")
)

// Internal consistency faults. They are never returned, only carried by a
// panicking *ConsistencyError.
var (
	ErrColumnNotInWorkspace = errors.New("column not found in its workspace")
	ErrWinNotInColumn       = errors.New("win not found in its column")
)

// ConsistencyError reports a broken parent/child link in the layout tree.
type ConsistencyError struct {
	Kind  error
	Owner string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("layout consistency fault (%s): %v", e.Owner, e.Kind)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Kind
}

func consistencyFault(kind error, owner string) {
	panic(&ConsistencyError{Kind: kind, Owner: owner})
}
