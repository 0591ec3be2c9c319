package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadRequest         = errors.New("bad request")
)
