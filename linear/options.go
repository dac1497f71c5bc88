package linear

// Option is a function that configures Ridge
type Option func(*Ridge)

// WithAlpha sets the L2 regularization strength (lambda).
// The bias column is regularized identically to every other coefficient.
func WithAlpha(alpha float64) Option {
	return func(r *Ridge) {
		r.alpha = alpha
	}
}

// WithConditionThreshold sets the condition-number threshold above which
// Fit emits a ConditioningWarning
func WithConditionThreshold(threshold float64) Option {
	return func(r *Ridge) {
		r.condThreshold = threshold
	}
}
