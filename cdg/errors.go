package cdg

import "errors"

// ErrEmptyInput is returned by Open when given a zero-length byte stream.
// The decoder is left in its reset state.
var ErrEmptyInput = errors.New("cdg: empty input")
