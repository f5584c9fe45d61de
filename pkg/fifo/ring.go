// Package fifo 提供定长的环形队列，用于模板匹配测试中的滑动窗口
package fifo

// Ring 定长先进先出队列，元素为 0/1 位
// 不是并发安全的
type Ring struct {
	buf  []uint8
	head int // 最旧元素的下标
	n    int
}

// New 创建容量为 capacity 的队列
func New(capacity int) *Ring {
	return &Ring{buf: make([]uint8, capacity)}
}

// Len 当前元素个数
func (r *Ring) Len() int { return r.n }

// Cap 队列容量
func (r *Ring) Cap() int { return len(r.buf) }

// Full 队列是否已满
func (r *Ring) Full() bool { return r.n == len(r.buf) }

// Reset 清空队列
func (r *Ring) Reset() {
	r.head, r.n = 0, 0
}

// Push 在队尾追加一个元素，队列已满时返回 false
func (r *Ring) Push(v uint8) bool {
	if r.n == len(r.buf) {
		return false
	}
	i := r.head + r.n
	if i >= len(r.buf) {
		i -= len(r.buf)
	}
	r.buf[i] = v
	r.n++
	return true
}

// Pop 移除并返回最旧的元素
func (r *Ring) Pop() (uint8, bool) {
	if r.n == 0 {
		return 0, false
	}
	v := r.buf[r.head]
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	r.n--
	return v, true
}

// At 返回第 i 旧的元素（0 为最旧），i 必须在 [0, Len()) 内
func (r *Ring) At(i int) uint8 {
	j := r.head + i
	if j >= len(r.buf) {
		j -= len(r.buf)
	}
	return r.buf[j]
}

// MatchDepth 从最旧的一端开始逐个比较，返回连续相等的个数
// 遇到第一个不相等的元素或较短队列的末尾时停止。
func MatchDepth(a, b *Ring) int {
	n := a.n
	if b.n < n {
		n = b.n
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return i
		}
	}
	return n
}
