package random

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"etaus/pkg/etaus"
)

// FromPhrase 由短语派生一组确定的种子
// 三个分量分别取 xxhash(phrase#i) 的低 32 位，同一短语总是得到同一组种子。
// 结果可能是退化种子，由调用方决定如何处理。
func FromPhrase(phrase string) etaus.Seed {
	var seed etaus.Seed
	for i := range seed {
		seed[i] = uint32(xxhash.Sum64String(phrase + "#" + strconv.Itoa(i)))
	}
	return seed
}
