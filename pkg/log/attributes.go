// Package log defines standard attribute keys for curve-fitting operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in polyfit. Using these standard keys enables better
// log analysis, monitoring, and debugging of fitting workflows.
//
// The keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "Ridge", "PolynomialRidge", "PolynomialFeatures"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "preprocessing", "metrics"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
// These attributes describe the structure of the data being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of basis features (degree+1).
	FeaturesKey = "data.features"
)

// Hyperparameters
const (
	// DegreeKey records the polynomial degree of the basis expansion.
	DegreeKey = "param.degree"

	// AlphaKey records the ridge regularization strength.
	AlphaKey = "param.alpha"

	// SeedKey records the RNG seed used for deterministic subsampling.
	SeedKey = "param.seed"
)

// Performance Metrics
const (
	// DurationMsKey records elapsed wall-clock time in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// MSEKey records the mean squared error of a fit.
	MSEKey = "metric.mse"

	// R2Key records the coefficient of determination of a fit.
	R2Key = "metric.r2"
)
