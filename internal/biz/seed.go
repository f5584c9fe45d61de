package biz

import (
	"etaus/pkg/etaus"
)

// SeedSource 种子来源接口
type SeedSource interface {
	// Random 生成一组新的非退化种子
	Random() etaus.Seed
	// FromPhrase 由短语派生确定的种子
	FromPhrase(phrase string) etaus.Seed
}

// SeedSpec 调用方指定种子的方式：显式种子优先，其次短语，都没有则随机生成
type SeedSpec struct {
	Seed   *etaus.Seed
	Phrase string
}

// resolve 解析种子，allowDegenerate 为 false 时拒绝退化种子
func (s SeedSpec) resolve(src SeedSource, allowDegenerate bool) (etaus.Seed, error) {
	var seed etaus.Seed
	switch {
	case s.Seed != nil:
		seed = *s.Seed
	case s.Phrase != "":
		seed = src.FromPhrase(s.Phrase)
	default:
		return src.Random(), nil
	}
	if !allowDegenerate && etaus.Degenerate(seed) {
		return seed, ErrSeedDegenerate
	}
	return seed, nil
}
