package overlay

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrBadPatch    = errors.New("bad merge patch")
)
