package solver

import "errors"

// ErrMaxBranchesExceeded is returned by ArcConsistency when WithMaxBranches
// was configured and the search split more branches than that bound. It is
// an ambient safety valve, not part of the core algorithm: the core itself
// has no notion of a branch budget and will recurse as deep as the problem
// requires.
var ErrMaxBranchesExceeded = errors.New("solver: exceeded configured max branches")
