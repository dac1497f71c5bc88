package linear

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/polyfit/dataset"
	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

func TestPolynomialRidge_ExactQuadratic(t *testing.T) {
	// y = x²の完全再構成: coefficients ≈ [0, 0, 1], Predict(4) ≈ 16
	pr := NewPolynomialRidge(2, WithAlpha(0))

	if err := pr.Fit([]float64{1, 2, 3}, []float64{1, 4, 9}); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	coef := pr.Coefficients()
	expected := []float64{0, 0, 1}
	for i, want := range expected {
		if math.Abs(coef[i]-want) > 1e-6 {
			t.Errorf("Expected coef[%d] ~ %f, got %f", i, want, coef[i])
		}
	}

	pred, err := pr.Predict([]float64{4})
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	if math.Abs(pred[0]-16) > 1e-6 {
		t.Errorf("Expected prediction ~16, got %f", pred[0])
	}
}

func TestPolynomialRidge_DegreeOneNormalEquations(t *testing.T) {
	// degree=1, λ=0の解は2パラメータの正規方程式を手で解いた値と一致する
	x := []float64{1, 2, 3}
	y := []float64{1, 4, 9}

	// 手計算: slope = Σ(x-x̄)(y-ȳ)/Σ(x-x̄)², intercept = ȳ - slope·x̄
	var xMean, yMean float64
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= float64(len(x))
	yMean /= float64(len(y))

	var sxy, sxx float64
	for i := range x {
		sxy += (x[i] - xMean) * (y[i] - yMean)
		sxx += (x[i] - xMean) * (x[i] - xMean)
	}
	slope := sxy / sxx
	intercept := yMean - slope*xMean

	pr := NewPolynomialRidge(1, WithAlpha(0))
	if err := pr.Fit(x, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	pred, err := pr.Predict([]float64{2})
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	want := intercept + slope*2
	if math.Abs(pred[0]-want) > 1e-9 {
		t.Errorf("Expected prediction %g at x=2, got %g", want, pred[0])
	}
}

func TestPolynomialRidge_PredictIdempotent(t *testing.T) {
	pr := NewPolynomialRidge(3, WithAlpha(0.5))
	x := dataset.Linspace(0, 10, 30)
	if err := pr.Fit(x, dataset.TrueCurve(x)); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	query := dataset.Linspace(-2, 12, 50)
	first, err := pr.Predict(query)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	second, err := pr.Predict(query)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	if len(first) != len(second) || len(first) != len(query) {
		t.Fatalf("Expected %d predictions, got %d and %d", len(query), len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Prediction %d differs between identical calls: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestPolynomialRidge_NotFitted(t *testing.T) {
	pr := NewPolynomialRidge(2)

	_, err := pr.Predict([]float64{1})
	if err == nil {
		t.Fatal("Expected error when predicting before fit")
	}
	var nfErr *errors.NotFittedError
	if !errors.As(err, &nfErr) {
		t.Errorf("Expected NotFittedError, got %T: %v", err, err)
	}

	if _, err := pr.Score([]float64{1}, []float64{1}); err == nil {
		t.Error("Expected error when scoring before fit")
	}
}

func TestPolynomialRidge_LengthMismatch(t *testing.T) {
	pr := NewPolynomialRidge(2)

	err := pr.Fit([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("Expected error for mismatched x and y lengths")
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("Expected DimensionError, got %T: %v", err, err)
	}
}

func TestPolynomialRidge_NegativeDegree(t *testing.T) {
	pr := NewPolynomialRidge(-3)

	err := pr.Fit([]float64{1, 2}, []float64{1, 2})
	if err == nil {
		t.Fatal("Expected error for negative degree")
	}
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}

func TestPolynomialRidge_EmptyData(t *testing.T) {
	pr := NewPolynomialRidge(2)
	if err := pr.Fit(nil, nil); err == nil {
		t.Error("Expected error for empty training data")
	}
}

func TestPolynomialRidge_ShrinkageMonotonic(t *testing.T) {
	x := dataset.Linspace(0, 10, 25)
	y := dataset.TrueCurve(x)

	alphas := []float64{0, 0.001, 0.1, 1, 10, 1000}
	prevNorm := math.Inf(1)
	for _, alpha := range alphas {
		pr := NewPolynomialRidge(4, WithAlpha(alpha))
		if err := pr.Fit(x, y); err != nil {
			t.Fatalf("alpha=%g: failed to fit: %v", alpha, err)
		}
		norm := coefNorm(pr.Coefficients())
		if norm > prevNorm+1e-9 {
			t.Errorf("alpha=%g: coefficient norm %g exceeds previous %g", alpha, norm, prevNorm)
		}
		prevNorm = norm
	}
}

func TestPolynomialRidge_DegreeZeroPredictsRegularizedMean(t *testing.T) {
	y := []float64{2, 4, 6, 8}
	alpha := 2.0

	pr := NewPolynomialRidge(0, WithAlpha(alpha))
	if err := pr.Fit([]float64{1, 2, 3, 4}, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	var sum float64
	for _, v := range y {
		sum += v
	}
	want := sum / (float64(len(y)) + alpha)

	pred, err := pr.Predict([]float64{-7, 0, 42})
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	for i, p := range pred {
		if math.Abs(p-want) > 1e-10 {
			t.Errorf("prediction %d: expected regularized mean %g, got %g", i, want, p)
		}
	}
}

func TestPolynomialRidge_TutorialScenario(t *testing.T) {
	// チュートリアル設定の端から端まで: [0,10]の100点からシード固定で20点を抽出し、
	// 次数3/4/5のモデルを独立に学習して評価グリッドで予測する
	grid := dataset.Linspace(0, 10, 100)
	xTrain, err := dataset.Sample(grid, 20, 42)
	if err != nil {
		t.Fatalf("Failed to sample: %v", err)
	}
	yTrain := dataset.TrueCurve(xTrain)

	for _, degree := range []int{3, 4, 5} {
		pr := NewPolynomialRidge(degree, WithAlpha(1e-3))
		if err := pr.Fit(xTrain, yTrain); err != nil {
			t.Fatalf("degree=%d: failed to fit: %v", degree, err)
		}

		pred, err := pr.Predict(grid)
		if err != nil {
			t.Fatalf("degree=%d: failed to predict: %v", degree, err)
		}
		if len(pred) != len(grid) {
			t.Fatalf("degree=%d: expected %d predictions, got %d", degree, len(grid), len(pred))
		}
		for i, p := range pred {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				t.Fatalf("degree=%d: non-finite prediction at %d: %g", degree, i, p)
			}
		}

		// 学習データ上の当てはまりは平均予測より良いはず
		score, err := pr.Score(xTrain, yTrain)
		if err != nil {
			t.Fatalf("degree=%d: failed to score: %v", degree, err)
		}
		if score <= 0 {
			t.Errorf("degree=%d: expected positive R², got %f", degree, score)
		}
	}
}

func TestPolynomialRidge_GetParams(t *testing.T) {
	pr := NewPolynomialRidge(3, WithAlpha(0.25))
	params := pr.GetParams()

	if params["degree"] != 3 {
		t.Errorf("Expected degree 3, got %v", params["degree"])
	}
	if params["alpha"] != 0.25 {
		t.Errorf("Expected alpha 0.25, got %v", params["alpha"])
	}
}
