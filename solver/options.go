package solver

// Option configures a single ArcConsistency call. The only knob today is an
// optional cap on branching that the core algorithm itself does not need,
// but that a caller driving an unknown or adversarial graph may want.
type Option func(*config)

type config struct {
	maxBranches int
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMaxBranches caps the number of domain-split branches ArcConsistency
// will explore before it gives up and returns ErrMaxBranchesExceeded. A
// value <= 0 means unlimited, which is also the default.
func WithMaxBranches(n int) Option {
	return func(c *config) { c.maxBranches = n }
}
