package dttm

import "errors"

var (
	ErrValue = errors.New("invalid datetime value")
	ErrUnit  = errors.New("unknown datetime unit")
)
