package moora

import "github.com/katalvlaran/moora/matrix"

// Internal panic messages (no magic strings).
const (
	panicNilMatrixNorm = "moora: WithMatrixNorm: strategy must not be nil"
	panicNilWeightNorm = "moora: WithWeightNorm: strategy must not be nil"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error), never on user data.
type Option func(*Options)

// Options configures the ranking methods.
//   - weights: optional per-criterion weights; nil means unweighted (scalar 1).
//   - mnorm:   matrix normalization strategy (default matrix.VectorNorm).
//   - wnorm:   weight normalization strategy (default matrix.SumNorm).
type Options struct {
	weights []float64
	mnorm   matrix.MatrixNormFunc
	wnorm   matrix.VectorNormFunc
}

// DefaultOptions returns the documented defaults: no weights, vector
// normalization of the matrix and sum normalization of the weights.
func DefaultOptions() Options {
	return Options{
		mnorm: matrix.VectorNorm,
		wnorm: matrix.SumNorm,
	}
}

// WithWeights sets per-criterion weights. The slice is copied. Weights are
// validated against the column count and normalized by the weight strategy
// before use. FMF and MultiMOORA ignore weights.
func WithWeights(w []float64) Option {
	var cp []float64
	if w != nil {
		cp = make([]float64, len(w))
		copy(cp, w)
	}
	return func(o *Options) { o.weights = cp }
}

// WithMatrixNorm substitutes the matrix normalization strategy.
// Panics if f is nil.
func WithMatrixNorm(f matrix.MatrixNormFunc) Option {
	if f == nil {
		panic(panicNilMatrixNorm)
	}
	return func(o *Options) { o.mnorm = f }
}

// WithWeightNorm substitutes the weight normalization strategy.
// Panics if f is nil.
func WithWeightNorm(f matrix.VectorNormFunc) Option {
	if f == nil {
		panic(panicNilWeightNorm)
	}
	return func(o *Options) { o.wnorm = f }
}

// gatherOptions applies setters on top of DefaultOptions (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
