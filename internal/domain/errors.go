package domain

import "errors"

// ErrMoviesUnavailable covers both a failed catalog load and a legitimately
// empty catalog; the two are deliberately indistinguishable to callers.
var ErrMoviesUnavailable = errors.New("movies data unavailable")

// ErrHistoryUnavailable signals the watch history store could not be read.
var ErrHistoryUnavailable = errors.New("history data unavailable")
