// Package polyfit provides ridge-regularized polynomial curve fitting for
// one-dimensional (x, y) samples, with a scikit-learn-like API.
//
// The pipeline is an explicit composition of two independently testable
// stages: preprocessing.PolynomialFeatures expands each scalar input into its
// polynomial basis vector, and linear.Ridge solves the regularized normal
// equations over the expanded features with a Cholesky factorization.
// linear.PolynomialRidge packages the composition as a single model.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/polyfit/linear"
//	)
//
//	func main() {
//	    pr := linear.NewPolynomialRidge(2, linear.WithAlpha(0))
//	    if err := pr.Fit([]float64{1, 2, 3}, []float64{1, 4, 9}); err != nil {
//	        log.Fatal(err)
//	    }
//	    pred, err := pr.Predict([]float64{4})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(pred[0]) // ~16
//	}
//
// The dataset package generates the deterministic synthetic data used by the
// examples, and the chart package renders named series through gonum/plot.
package polyfit
