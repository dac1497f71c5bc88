// Package dataset は多項式回帰のデモ用の決定論的な合成データを提供します。
// 乱数状態は常に明示的なシードから生成し、グローバルな乱数源は使いません。
// 同じシードからは常に同じ訓練データが得られます。
package dataset

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

// Linspace は[start, stop]を両端含みでnum等分した点列を返す。
// numが1の場合はstartのみを返し、0以下の場合はnilを返す。
func Linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{start}
	}
	dst := make([]float64, num)
	return floats.Span(dst, start, stop)
}

// GroundTruth はデモで近似対象とする既知の関数 f(x) = x·sin(x) を評価する
func GroundTruth(x float64) float64 {
	return x * math.Sin(x)
}

// TrueCurve は点列の各点でGroundTruthを評価した系列を返す
func TrueCurve(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = GroundTruth(x)
	}
	return ys
}

// Sample は点列からn点を非復元抽出して昇順で返す。
// 抽出はシードで完全に決定され、同じ(xs, n, seed)は常に同じ結果を返す。
// 元のスライスは変更しない。
//
// パラメータ:
//   - xs: 抽出元の点列
//   - n: 抽出する点数 (1 <= n <= len(xs))
//   - seed: 乱数シード
func Sample(xs []float64, n int, seed int64) ([]float64, error) {
	if n <= 0 || n > len(xs) {
		return nil, errors.NewValidationError("n", "must be in [1, len(xs)]", n)
	}

	rng := rand.New(rand.NewSource(seed))

	// インデックスをシャッフルして先頭n個を取る
	perm := rng.Perm(len(xs))
	picked := make([]float64, n)
	for i := 0; i < n; i++ {
		picked[i] = xs[perm[i]]
	}

	sort.Float64s(picked)
	return picked, nil
}
