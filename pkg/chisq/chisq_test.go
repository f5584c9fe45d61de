package chisq

import (
	"math"
	"testing"
)

func TestPValue(t *testing.T) {
	tests := []struct {
		name string
		stat float64
		df   int
		want float64
	}{
		{"df1 critical", 3.841458820694124, 1, 0.05},
		{"df2 critical", 5.991464547107979, 2, 0.05},
		{"df12 critical", 21.02606981748307, 12, 0.05},
		{"df2 exact", 2, 2, math.Exp(-1)},
		{"df12 template", 16.00160875, 12, 0.19116238949683},
		{"zero stat", 0, 5, 1},
		{"df100 critical", 124.34211340400407, 100, 0.05},
		{"far tail", 74688, 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PValue(tt.stat, tt.df); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PValue(%v, %d) = %v, want %v", tt.stat, tt.df, got, tt.want)
			}
		})
	}

	if !math.IsNaN(PValue(1, 0)) {
		t.Error("PValue with df=0 should be NaN")
	}
}

func TestGeometric(t *testing.T) {
	got := Geometric(1000, 4)
	want := []float64{500, 250, 125, 62.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Geometric()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTest(t *testing.T) {
	observed := []float64{510, 240, 130, 60, 30, 20, 5, 3, 2}
	expected := Geometric(1000, len(observed))

	res := Test(observed, expected, MinExpected)
	// 期望频数 >= 10 的分组：500 250 125 62.5 31.25 15.625
	if res.Bins != 6 || res.DF != 5 {
		t.Fatalf("Bins=%d DF=%d, want 6/5", res.Bins, res.DF)
	}
	var stat float64
	for i := 0; i < 6; i++ {
		d := observed[i] - expected[i]
		stat += d * d / expected[i]
	}
	if math.Abs(res.Stat-stat) > 1e-12 {
		t.Errorf("Stat = %v, want %v", res.Stat, stat)
	}
	if last := res.Rows[len(res.Rows)-1]; last.ChiSq != res.Stat || last.Bin != 5 {
		t.Errorf("last row = %+v", last)
	}
	if res.PValue <= 0 || res.PValue >= 1 {
		t.Errorf("PValue = %v", res.PValue)
	}
}

func TestTest_TooFewBins(t *testing.T) {
	res := Test([]float64{3, 2}, []float64{12, 6}, MinExpected)
	if res.Bins != 1 || res.DF != 0 || res.PValue != 1 {
		t.Errorf("res = %+v", res)
	}
}
