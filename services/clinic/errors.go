package clinic

import "errors"

// ErrLimitOutOfRange is returned when a daily limit update falls outside the
// permitted 1-100 range.
var ErrLimitOutOfRange = errors.New("daily limit must be between 1 and 100")
