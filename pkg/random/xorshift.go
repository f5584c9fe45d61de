package random

import "etaus/pkg/etaus"

// seedLimit 与原模板测试一致：种子取自 [0, 2e9)
const seedLimit = 2000000000

// XorShift64Star 是一个快速的伪随机数生成器，只用来产生 etaus 的种子
// 注意：不适用于加密场景
type XorShift64Star struct {
	s uint64
}

// NewXorShift64Star 创建一个新的种子源
// seed: 种子值，如果为 0 则使用默认种子
func NewXorShift64Star(seed uint64) *XorShift64Star {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15 // 避免零状态
	}
	return &XorShift64Star{s: seed}
}

// next64 生成下一个 64 位随机数
func (r *XorShift64Star) next64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Uint64 生成 64 位随机数
func (r *XorShift64Star) Uint64() uint64 {
	return r.next64()
}

// Below 生成 [0, n) 的随机数，n 为 0 时返回 0
func (r *XorShift64Star) Below(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return r.next64() % n
}

// Seed 生成一组 etaus 种子，每个分量在 [0, 2e9) 内
// 会使某个 Tausworthe 分量退化的组合会被丢弃重抽。
func (r *XorShift64Star) Seed() etaus.Seed {
	for {
		seed := etaus.Seed{
			uint32(r.Below(seedLimit)),
			uint32(r.Below(seedLimit)),
			uint32(r.Below(seedLimit)),
		}
		if !etaus.Degenerate(seed) {
			return seed
		}
	}
}
