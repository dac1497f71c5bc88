package linear

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfit/core/model"
	"github.com/YuminosukeSato/polyfit/pkg/errors"
	"github.com/YuminosukeSato/polyfit/preprocessing"
)

// PolynomialRidge は1次元入力に対する多項式リッジ回帰モデル。
// PolynomialFeaturesによる基底展開とRidgeによる正則化解法を明示的に合成する。
// 汎用的なパイプライン機構は使わない（合成は常にこの一通りしかないため）。
//
// モデルは未学習(Unfit)と学習済み(Fit)の2状態のみを持ち、
// 遷移はFit呼び出しによる一方向のみ。学習後の係数は不変である。
type PolynomialRidge struct {
	model.BaseEstimator
	poly  *preprocessing.PolynomialFeatures
	ridge *Ridge
}

// NewPolynomialRidge は新しいPolynomialRidgeモデルを作成する
//
// パラメータ:
//   - degree: 多項式基底の最大次数。負の値はFit時にValidationErrorになる
//   - opts: 内部のRidgeに適用するオプション (WithAlpha など)
//
// 使用例:
//
//	pr := linear.NewPolynomialRidge(3, linear.WithAlpha(0.5))
//	err := pr.Fit(xTrain, yTrain)
//	yPred, err := pr.Predict(xEval)
func NewPolynomialRidge(degree int, opts ...Option) *PolynomialRidge {
	return &PolynomialRidge{
		poly:  preprocessing.NewPolynomialFeatures(degree),
		ridge: NewRidge(opts...),
	}
}

// Degree は多項式基底の最大次数を返す
func (pr *PolynomialRidge) Degree() int {
	return pr.poly.Degree
}

// Alpha は正則化強度を返す
func (pr *PolynomialRidge) Alpha() float64 {
	return pr.ridge.Alpha()
}

// Fit は(x, y)のサンプル列からモデルを学習させる。
// xとyの長さが一致しない場合はDimensionErrorを返す。
// 学習は一度だけ行う想定で、成功するとモデルは学習済み状態になる。
func (pr *PolynomialRidge) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return errors.NewDimensionError("PolynomialRidge.Fit", len(x), len(y), 0)
	}
	if len(x) == 0 {
		return errors.NewModelError("PolynomialRidge.Fit", "empty data", errors.ErrEmptyData)
	}

	X, err := pr.poly.Transform(x)
	if err != nil {
		return err
	}

	// モデルは自身の入力コピーのみを読む
	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	yMat := mat.NewDense(len(y), 1, yCopy)

	if err := pr.ridge.Fit(X, yMat); err != nil {
		return err
	}

	pr.SetFitted()
	return nil
}

// Predict は問い合わせ点列に対する予測値を返す。
// 各点をモデルの次数で再展開し、係数ベクトルとの内積を取る。
// 出力は入力と同じ順序・同じ長さで、同一入力に対する結果は常に同一。
func (pr *PolynomialRidge) Predict(x []float64) ([]float64, error) {
	if !pr.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialRidge", "Predict")
	}

	X, err := pr.poly.Transform(x)
	if err != nil {
		return nil, err
	}

	preds, err := pr.ridge.Predict(X)
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(x))
	for i := range result {
		result[i] = preds.At(i, 0)
	}
	return result, nil
}

// Coefficients は学習された係数ベクトル（長さdegree+1）のコピーを返す
func (pr *PolynomialRidge) Coefficients() []float64 {
	return pr.ridge.Coefficients()
}

// Score はモデルの決定係数（R²）を計算する
func (pr *PolynomialRidge) Score(x, y []float64) (float64, error) {
	if !pr.IsFitted() {
		return 0, errors.NewNotFittedError("PolynomialRidge", "Score")
	}
	if len(x) != len(y) {
		return 0, errors.NewDimensionError("PolynomialRidge.Score", len(x), len(y), 0)
	}

	X, err := pr.poly.Transform(x)
	if err != nil {
		return 0, err
	}

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	return pr.ridge.Score(X, mat.NewDense(len(y), 1, yCopy))
}

// GetParams はモデルのハイパーパラメータを取得する
func (pr *PolynomialRidge) GetParams() map[string]interface{} {
	params := pr.ridge.GetParams()
	params["degree"] = pr.poly.Degree
	return params
}

// String はモデルの文字列表現を返す
func (pr *PolynomialRidge) String() string {
	if !pr.IsFitted() {
		return fmt.Sprintf("PolynomialRidge(degree=%d, alpha=%g)", pr.Degree(), pr.Alpha())
	}
	return fmt.Sprintf("PolynomialRidge(degree=%d, alpha=%g, fitted)", pr.Degree(), pr.Alpha())
}
