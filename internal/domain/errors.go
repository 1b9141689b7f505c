package domain

import "errors"

// ErrSuperseded is returned when an analytics computation was
// overtaken by a newer request for a different range.
var ErrSuperseded = errors.New("analytics request superseded")
