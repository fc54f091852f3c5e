package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrServerError  = errors.New("server error")
)
