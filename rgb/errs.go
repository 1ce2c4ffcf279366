package rgb

import "errors"

var ErrBadHex = errors.New("bad hex color")
