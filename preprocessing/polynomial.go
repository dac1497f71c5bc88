// Package preprocessing は回帰モデルの入力となる特徴量変換を提供します。
package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfit/core/model"
	"github.com/YuminosukeSato/polyfit/core/parallel"
	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

var _ model.Transformer = (*PolynomialFeatures)(nil)

// PolynomialFeatures はスカラー入力を多項式基底ベクトル [1, x, x², ..., x^degree] に展開する変換器。
// 学習するパラメータは持たず、Transformは副作用のない純粋な変換である。
// 列0は常にバイアス項（全て1）になる。x=0の場合もx⁰=1と定義する。
type PolynomialFeatures struct {
	// Degree は展開する最大次数 (0以上)
	Degree int
}

// NewPolynomialFeatures は新しいPolynomialFeaturesを作成する
//
// パラメータ:
//   - degree: 展開する最大次数。負の値はTransform/ExpandScalar時にValidationErrorになる
//
// 使用例:
//
//	poly := preprocessing.NewPolynomialFeatures(3)
//	X, err := poly.Transform([]float64{1.0, 2.0, 3.0})
func NewPolynomialFeatures(degree int) *PolynomialFeatures {
	return &PolynomialFeatures{Degree: degree}
}

// NumFeatures は展開後の特徴量数 (degree+1) を返す
func (p *PolynomialFeatures) NumFeatures() int {
	return p.Degree + 1
}

func (p *PolynomialFeatures) validate() error {
	if p.Degree < 0 {
		return errors.NewValidationError("degree", "must be non-negative", p.Degree)
	}
	return nil
}

// ExpandScalar は単一のスカラーを基底ベクトル [x⁰, x¹, ..., x^degree] に展開する
//
// パラメータ:
//   - x: 展開するスカラー値
//
// 戻り値:
//   - []float64: 長さdegree+1の基底ベクトル
//   - error: 次数が負の場合のValidationError
func (p *PolynomialFeatures) ExpandScalar(x float64) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	row := make([]float64, p.Degree+1)
	// 逐次的な累乗でmath.Powの誤差と呼び出しコストを避ける
	pow := 1.0
	for j := 0; j <= p.Degree; j++ {
		row[j] = pow
		pow *= x
	}
	return row, nil
}

// Transform はスカラー列をVandermonde型の設計行列に展開する
//
// パラメータ:
//   - x: 展開するスカラー列 (長さn)
//
// 戻り値:
//   - *mat.Dense: n×(degree+1)の設計行列。行iは [1, x_i, ..., x_i^degree]
//   - error: 次数が負の場合のValidationError、空入力の場合のModelError
func (p *PolynomialFeatures) Transform(x []float64) (*mat.Dense, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	n := len(x)
	if n == 0 {
		return nil, errors.NewModelError("PolynomialFeatures.Transform", "empty data", errors.ErrEmptyData)
	}

	X := mat.NewDense(n, p.Degree+1, nil)

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pow := 1.0
			for j := 0; j <= p.Degree; j++ {
				X.Set(i, j, pow)
				pow *= x[i]
			}
		}
	})

	return X, nil
}

// GetParams は変換器のパラメータを取得する
func (p *PolynomialFeatures) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"degree": p.Degree,
	}
}

// String は変換器の文字列表現を返す
func (p *PolynomialFeatures) String() string {
	return fmt.Sprintf("PolynomialFeatures(degree=%d)", p.Degree)
}
