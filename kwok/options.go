package kwok

// config holds ambient (never algorithmic) behavior toggles for Solve.
// Solve's algorithmic behavior is fully determined by lSize, rSize, and adj;
// Option never changes which matching is found, only what the caller is
// told about the run.
type config struct {
	audit     bool
	onAugment func(phase, leftID int)
}

// Option configures ambient behavior of Solve.
type Option func(*config)

// WithAudit enables a post-solve feasibility audit: every edge is rechecked
// against LeftLabel[l]+RightLabel[r] ≥ w(l,r) before Solve returns. A
// violation is reported as ErrInvariantViolation rather than silently
// accepted. Off by default since the audit costs an extra O(E) pass.
func WithAudit() Option {
	return func(c *config) {
		c.audit = true
	}
}

// WithOnAugment registers a callback invoked once per completed phase with
// the phase index and the left vertex that seeded it. It serves ambient
// observability (logging, metrics) and never influences the algorithm.
func WithOnAugment(fn func(phase, leftID int)) Option {
	return func(c *config) {
		c.onAugment = fn
	}
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
