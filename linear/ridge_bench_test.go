package linear

import (
	"testing"

	"github.com/YuminosukeSato/polyfit/dataset"
)

func BenchmarkPolynomialRidge_Fit(b *testing.B) {
	x := dataset.Linspace(0, 10, 1000)
	y := dataset.TrueCurve(x)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pr := NewPolynomialRidge(5, WithAlpha(1.0))
		if err := pr.Fit(x, y); err != nil {
			b.Fatalf("Failed to fit: %v", err)
		}
	}
}

func BenchmarkPolynomialRidge_Predict(b *testing.B) {
	x := dataset.Linspace(0, 10, 1000)
	y := dataset.TrueCurve(x)

	pr := NewPolynomialRidge(5, WithAlpha(1.0))
	if err := pr.Fit(x, y); err != nil {
		b.Fatalf("Failed to fit: %v", err)
	}

	query := dataset.Linspace(0, 10, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pr.Predict(query); err != nil {
			b.Fatalf("Failed to predict: %v", err)
		}
	}
}
