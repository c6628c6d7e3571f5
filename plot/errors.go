package plot

import "errors"

// ErrEmptyStream indicates a theta/dzA file had a header but no data rows.
var ErrEmptyStream = errors.New("plot: stream has no data rows")

// ErrMalformedStream indicates a row's column count didn't match the header.
var ErrMalformedStream = errors.New("plot: malformed stream row")
