// Package etaus 实现扩展 Tausworthe 随机数生成器（etaus）。
//
// 三个 32 位 GFSR 分量异或组合后，再经过 16384 项的 Bays-Durham 洗牌表输出。
// 注意：不适用于加密场景。
//
// Generator 不是并发安全的：热路径上既不校验参数也不加锁，
// 多个 goroutine 需要各自持有实例，或者在外层自行加锁。
package etaus

const (
	// TableSize 洗牌表大小（2^14），偏移量取 pprev 的高 14 位
	TableSize = 1 << 14
	// WarmUp 播种后丢弃的预热步数
	WarmUp = 128
	// SeedSteps 一次完整播种内部生成的次数：预热 + 历史 3 项 + 整张表
	SeedSteps = WarmUp + 3 + TableSize

	ofstShift = 32 - 14
)

// 三个分量的掩码
const (
	msk1 = 0xfffffffe
	msk2 = 0xfffffff8
	msk3 = 0xfffffff0
)

// Seed 三个 32 位种子，分别对应 s1, s2, s3，不做任何校验
type Seed [3]uint32

// DefaultSeed 构造时的默认状态：s1, s1+17, s1+31
var DefaultSeed = Seed{123456789, 123456789 + 17, 123456789 + 31}

// Degenerate 判断种子是否会让某个分量退化为全零
// 各分量的最小有效值分别为 2, 8, 16（{1,2,3} 会使整个输出恒为 0）。
// 只用于热路径之外的包装层。
func Degenerate(seed Seed) bool {
	return seed[0] < 2 || seed[1] < 8 || seed[2] < 16
}

// Generator 生成器实例：分量状态、输出历史与洗牌表
//
// 零值未播种，洗牌表全为 0，此时的输出没有意义，必须先调用 Seed。
type Generator struct {
	s1, s2, s3 uint32

	out   uint32 // 最近一次输出
	prev  uint32 // 上一次输出
	pprev uint32 // 上上次输出
	ofst  uint32 // 最近一次使用的洗牌表偏移

	table [TableSize]uint32
}

// New 创建生成器并用 seed 播种
func New(seed Seed) *Generator {
	g := &Generator{s1: DefaultSeed[0], s2: DefaultSeed[1], s3: DefaultSeed[2]}
	g.Seed(seed)
	return g
}

func (g *Generator) one() {
	lft := (g.s1 & msk1) << 12
	rgt := ((g.s1 << 13) ^ g.s1) >> 19
	g.s1 = lft ^ rgt
}

func (g *Generator) two() {
	lft := (g.s2 & msk2) << 4
	rgt := ((g.s2 << 2) ^ g.s2) >> 25
	g.s2 = lft ^ rgt
}

func (g *Generator) tre() {
	lft := (g.s3 & msk3) << 17
	rgt := ((g.s3 << 3) ^ g.s3) >> 11
	g.s3 = lft ^ rgt
}

// step 未经洗牌的一步，播种与 Next 共用
func (g *Generator) step() uint32 {
	g.one()
	g.two()
	g.tre()
	return g.s1 ^ g.s2 ^ g.s3
}

// sample 播种时使用：一步并记入 out
func (g *Generator) sample() uint32 {
	g.out = g.step()
	return g.out
}

// Seed 重置全部状态并重新填充洗牌表，可以在任意时刻调用。
// 预热 128 步，随后 3 步分别写入 out, prev, pprev，再按下标顺序填满洗牌表。
// 每一步都会写 out，所以播种结束时 out 等于 table[TableSize-1]。
// ofst 不受播种影响，保留上一次 Next 留下的值。
func (g *Generator) Seed(seed Seed) {
	g.s1, g.s2, g.s3 = seed[0], seed[1], seed[2]
	for i := 0; i < WarmUp; i++ {
		g.sample()
	}
	g.out = g.sample()
	g.prev = g.sample()
	g.pprev = g.sample()
	for i := range g.table {
		g.table[i] = g.sample()
	}
}

// Next 生成下一个 32 位输出（经过 Bays-Durham 洗牌）
// 偏移量来自两步之前的输出，新值换入表中，表中旧值作为本次输出。
func (g *Generator) Next() uint32 {
	g.pprev = g.prev
	g.prev = g.out
	raw := g.step()
	g.ofst = g.pprev >> ofstShift
	g.out = g.table[g.ofst]
	g.table[g.ofst] = raw
	return g.out
}
