package builder

// Option customizes the config resolved before a Build call's constructors
// run.
type Option func(*config)

type config struct {
	// constraintPrefix names the per-value constraints a topology adds.
	constraintPrefix string
	// requireConnected makes Build fail if the finished graph has a vertex
	// unreachable from the first variable.
	requireConnected bool
}

func newConfig(opts ...Option) config {
	c := config{constraintPrefix: "OnlyOne"}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithConstraintPrefix sets the prefix used for generated per-value
// constraint names. Panics on an empty prefix.
func WithConstraintPrefix(prefix string) Option {
	if prefix == "" {
		panic("builder: WithConstraintPrefix(\"\")")
	}
	return func(c *config) { c.constraintPrefix = prefix }
}

// WithConnectedCheck makes Build verify, after all constructors ran, that
// every vertex of the finished graph is reachable from the first variable.
// Build returns ErrDisconnected otherwise. Useful for topologies that are
// meant to couple every variable to every constraint.
func WithConnectedCheck() Option {
	return func(c *config) { c.requireConnected = true }
}
