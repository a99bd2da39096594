package builder

import "errors"

// ErrConstructFailed wraps a nil or failing Constructor passed to Build.
var ErrConstructFailed = errors.New("builder: constructor failed")

// ErrTooFewValues indicates a topology was asked for fewer domain values or
// variables than it needs to be meaningful.
var ErrTooFewValues = errors.New("builder: too few values")

// ErrMismatchedLengths indicates two parallel slices the caller supplied
// (e.g. workers and per-worker domains) had different lengths.
var ErrMismatchedLengths = errors.New("builder: mismatched slice lengths")

// ErrDisconnected indicates WithConnectedCheck found a vertex unreachable
// from the first variable of the finished graph.
var ErrDisconnected = errors.New("builder: graph is not connected")
