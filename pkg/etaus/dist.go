package etaus

import "math"

const maxint = 65536.0 * 32768.0 // 2^31

// Uniform 返回 [0, 1) 区间的均匀分布浮点数
// 取一次输出作为有符号 32 位整数的绝对值再除以 2^31。
// math.MinInt32 的绝对值无法表示，按 0 处理，保证结果永远小于 1。
func (g *Generator) Uniform() float64 {
	i := int32(g.Next())
	if i == math.MinInt32 {
		return 0
	}
	frac := float64(i)
	if frac < 0 {
		frac = -frac
	}
	return frac / maxint
}

// Fraction53 返回 53 位精度的 [0, 1) 小数，比 Uniform 慢，但精度更高
// 每步输出按符号取一位：正数为 1，负数为 0；恰好为 0 的输出不贡献任何位。
func (g *Generator) Fraction53() float64 {
	var frac float64
	for i := 0; i < 53; i++ {
		frac = shiftIn(frac, int32(g.Next()))
	}
	return frac
}

// shiftIn 把一次输出的符号作为最高位移入 frac
func shiftIn(frac float64, j int32) float64 {
	if j > 0 {
		return frac*0.5 + 0.5
	} else if j < 0 {
		return frac * 0.5
	}
	return frac
}

// Int 返回 [0, limit) 的均匀整数，limit 必须大于 0（不校验）
func (g *Generator) Int(limit uint32) uint32 {
	return uint32(g.Uniform() * float64(limit))
}

// Bits 返回 n 位随机数，范围 [0, 2^n)
// 例如: Bits(4) 返回 0..15；n 应在 [1, 31] 之间（不校验）
func (g *Generator) Bits(n uint) uint32 {
	return g.Next() >> (32 - n)
}

// Bit 返回 0 或 1
func (g *Generator) Bit() uint32 {
	if g.Uniform() >= 0.5 {
		return 1
	}
	return 0
}
