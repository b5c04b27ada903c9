package domain

import "errors"

// ErrUnknownCTA is returned when an activation names no hero trigger. The HTTP
// error handler maps it to 404 with errors.Is.
var ErrUnknownCTA = errors.New("unknown call-to-action")
