package dupes

import "errors"

var ErrUnhashable = errors.New("unhashable element")
