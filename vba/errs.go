package vba

import "errors"

var (
	ErrFormat = errors.New("format error")
	ErrUDF    = errors.New("invalid udf")
)
