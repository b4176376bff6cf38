package usage

import "errors"

// ErrLimitReached indicates the user exceeded their AI usage allowance.
var ErrLimitReached = errors.New("limit reached")
