package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfit/core/model"
	"github.com/YuminosukeSato/polyfit/core/parallel"
	"github.com/YuminosukeSato/polyfit/metrics"
	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

var (
	_ model.Regressor       = (*Ridge)(nil)
	_ model.ParameterGetter = (*Ridge)(nil)
)

// デフォルトの正則化強度と条件数警告の閾値
const (
	defaultAlpha         = 1.0
	defaultCondThreshold = 1e12
)

// Ridge はL2正則化付き線形回帰モデル。
// 損失 ||Xβ - y||² + α||β||² を最小化する係数βを閉形式
// β = (XᵀX + αI)⁻¹Xᵀy で求める。
// バイアス項を含む全ての係数を一様に正則化する（バイアス列を除外しない）。
type Ridge struct {
	model.BaseEstimator
	alpha         float64 // 正則化強度 α (λ)
	condThreshold float64 // この条件数を超えるとConditioningWarningを発する

	Weights   *mat.VecDense // 係数ベクトル（学習後は不変）
	NFeatures int           // 特徴量の数
}

// NewRidge は新しいRidgeモデルを作成する。
// デフォルトはα=1.0。αはWithAlphaで変更できる。
func NewRidge(opts ...Option) *Ridge {
	r := &Ridge{
		alpha:         defaultAlpha,
		condThreshold: defaultCondThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Alpha は設定された正則化強度を返す
func (r *Ridge) Alpha() float64 {
	return r.alpha
}

// Fit は正則化付き正規方程式を解いてモデルを学習させる。
// XᵀX + αI は α>0 のとき対称正定値になるためCholesky分解で解く。
// 逆行列は明示的に計算しない（高次での外挿時に条件数が問題になるため）。
//
// 分解に失敗した場合（α=0かつXがランク落ちの場合にのみ起こり得る）は
// ErrSingularMatrixを含むModelErrorを返す。
func (r *Ridge) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Ridge.Fit")

	if r.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", r.alpha)
	}

	// 入力の検証
	rows, cols := X.Dims()
	ry, cy := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("Ridge.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != rows {
		return errors.NewDimensionError("Ridge.Fit", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Ridge.Fit", "y must be a column vector")
	}

	// グラム行列 XᵀX を対称行列として構築
	var gram mat.SymDense
	gram.SymOuterK(1, X.T())

	// 対角にαを加算（バイアス項も一様に正則化）
	for i := 0; i < cols; i++ {
		gram.SetSym(i, i, gram.At(i, i)+r.alpha)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(&gram); !ok {
		return errors.NewModelError("Ridge.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	// 条件数が大きい場合は解けても精度が疑わしいので警告する
	if cond := chol.Cond(); cond > r.condThreshold {
		errors.Warn(errors.NewConditioningWarning("Ridge.Fit", cond, r.condThreshold))
	}

	// Xᵀy を計算
	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}
	var xty mat.VecDense
	xty.MulVec(X.T(), yVec)

	// 係数を計算: (XᵀX + αI)⁻¹Xᵀy
	weights := mat.NewVecDense(cols, nil)
	if solveErr := chol.SolveVecTo(weights, &xty); solveErr != nil {
		return errors.NewModelError("Ridge.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	if stabErr := errors.CheckNumericalStability("Ridge.Fit", weights.RawVector().Data); stabErr != nil {
		return stabErr
	}

	r.Weights = weights
	r.NFeatures = cols

	// モデルを学習済み状態に設定
	r.SetFitted()

	return nil
}

// Predict は入力データに対する予測を行う。
// 同一の入力に対して常に同一の出力を返す（予測時に乱数や隠れ状態は使わない）。
func (r *Ridge) Predict(X mat.Matrix) (result mat.Matrix, err error) {
	defer errors.Recover(&err, "Ridge.Predict")

	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.NFeatures {
		return nil, errors.NewDimensionError("Ridge.Predict", r.NFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := 0.0
			for j := 0; j < cols; j++ {
				pred += X.At(i, j) * r.Weights.AtVec(j)
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// Coefficients は学習された係数ベクトルのコピーを返す。
// 内部状態を共有しないため、呼び出し側が変更してもモデルには影響しない。
func (r *Ridge) Coefficients() []float64 {
	if r.Weights == nil {
		return nil
	}

	coef := make([]float64, r.Weights.Len())
	for i := 0; i < r.Weights.Len(); i++ {
		coef[i] = r.Weights.AtVec(i)
	}
	return coef
}

// Score はモデルの決定係数（R²）を計算する
func (r *Ridge) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.R2ScoreMatrix(y, yPred)
}

// GetParams はモデルのハイパーパラメータを取得する
func (r *Ridge) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"alpha":               r.alpha,
		"condition_threshold": r.condThreshold,
	}
}
