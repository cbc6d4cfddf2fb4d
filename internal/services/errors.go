package services

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrActivityFull     = errors.New("activity is full")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
	ErrActivityExists   = errors.New("activity already exists")
	ErrInvalidInput     = errors.New("invalid input")
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// KindOf classifies err. Anything not produced by a business rule is internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadySignedUp),
		errors.Is(err, ErrActivityFull),
		errors.Is(err, ErrNotSignedUp),
		errors.Is(err, ErrActivityExists):
		return KindConflict
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindInternal
	}
}
