package usecase

import "strconv"

type ErrNotFound string

func (e ErrNotFound) Error() string { return string(e) + " not found" }

type ErrInvalidStatus int

func (e ErrInvalidStatus) Error() string {
	return "invalid status code " + strconv.Itoa(int(e))
}

type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type ErrAuth string

func (e ErrAuth) Error() string { return string(e) }

type ErrConflict string

func (e ErrConflict) Error() string { return string(e) }

// StoreError wraps a failure propagated from the document or object store.
// Services never retry; the caller decides.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
