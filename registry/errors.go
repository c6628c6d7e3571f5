package registry

import "errors"

// ErrRunNotFound indicates GetRun found no row for the requested run id.
var ErrRunNotFound = errors.New("registry: run not found")
