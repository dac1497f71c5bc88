// Package model provides the shared estimator interfaces and the
// fitted-state machine used by every model in polyfit.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that learn from a design matrix
// and a column-vector target.
type Fitter interface {
	Fit(X mat.Matrix, y mat.Matrix) error
}

// Predictor is the interface for fitted models that evaluate new inputs.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Transformer is the interface for stateless feature transformations
// over one-dimensional input.
type Transformer interface {
	Transform(x []float64) (*mat.Dense, error)
}

// Regressor combines the interfaces of a fittable regression model.
type Regressor interface {
	Fitter
	Predictor
	Scorer

	// IsFitted reports whether Fit has completed successfully.
	IsFitted() bool
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
