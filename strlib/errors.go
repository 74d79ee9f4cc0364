package strlib

import "errors"

var errBadString = errors.New("not a counted string")
