package errs

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrBadData  = errors.New("bad data")
	ErrNoData   = errors.New("no data")
	ErrStatus   = errors.New("unexpected status")
	ErrNoUser   = errors.New("no signed in user")
	ErrDisabled = errors.New("disabled")
)
