// Package chisq 卡方拟合优度检验
package chisq

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MinExpected 一个分组参与检验所需的最小期望频数
const MinExpected = 10.0

// Row 单个分组的明细
type Row struct {
	Bin      int     `json:"bin"`
	Actual   float64 `json:"actual"`
	Expected float64 `json:"expected"`
	Diff     float64 `json:"diff"`
	ChiSq    float64 `json:"chisq"` // 累计到本组的卡方值
}

// Result 检验结果
type Result struct {
	Stat   float64 `json:"stat"`
	DF     int     `json:"df"`
	Bins   int     `json:"bins"`
	PValue float64 `json:"pvalue"`
	Rows   []Row   `json:"rows"`
}

// Test 从第一个分组开始，只要期望频数不小于 minExpected 就计入统计量，
// 遇到第一个期望频数不足的分组即停止。自由度为分组数减一。
func Test(observed, expected []float64, minExpected float64) Result {
	var res Result
	n := len(observed)
	if len(expected) < n {
		n = len(expected)
	}
	for i := 0; i < n && expected[i] >= minExpected; i++ {
		diff := observed[i] - expected[i]
		res.Stat += diff * diff / expected[i]
		res.Rows = append(res.Rows, Row{
			Bin:      i,
			Actual:   observed[i],
			Expected: expected[i],
			Diff:     diff,
			ChiSq:    res.Stat,
		})
	}
	res.Bins = len(res.Rows)
	if res.Bins > 1 {
		res.DF = res.Bins - 1
		res.PValue = PValue(res.Stat, res.DF)
	} else {
		res.PValue = 1
	}
	return res
}

// Geometric 匹配深度的理论期望：深度 k 的概率为 2^-(k+1)
func Geometric(samples float64, n int) []float64 {
	expected := make([]float64, n)
	p := 0.5
	for i := range expected {
		expected[i] = samples * p
		p *= 0.5
	}
	return expected
}

// PValue 自由度为 df 的卡方分布上尾概率
func PValue(stat float64, df int) float64 {
	if df <= 0 {
		return math.NaN()
	}
	if stat <= 0 {
		return 1
	}
	return distuv.ChiSquared{K: float64(df)}.Survival(stat)
}
