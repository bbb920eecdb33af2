package service

import (
	"errors"

	"github.com/courtside/venue-service/pkg/auth"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrVenueNotFound = errors.New("venue not found")
	ErrUnauthorized  = auth.ErrUnauthorized
	ErrDataAccess    = errors.New("data access failure")
)

// StoreError wraps a failure of the backing store. It unwraps to the driver error
// and matches ErrDataAccess under errors.Is.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrDataAccess }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
