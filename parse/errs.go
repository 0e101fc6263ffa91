package parse

import "errors"

var ErrParse = errors.New("plist parse error")
