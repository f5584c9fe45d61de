package etaus

import (
	"bufio"
	"fmt"
	"io"
)

// State 生成器状态快照（不含洗牌表），仅用于诊断
type State struct {
	S1    uint32 `json:"s1"`
	S2    uint32 `json:"s2"`
	S3    uint32 `json:"s3"`
	Out   uint32 `json:"out"`
	Prev  uint32 `json:"prev"`
	PPrev uint32 `json:"pprev"`
	Ofst  uint32 `json:"ofst"`
}

// State 返回当前状态快照，不改变生成器
func (g *Generator) State() State {
	return State{
		S1:    g.s1,
		S2:    g.s2,
		S3:    g.s3,
		Out:   g.out,
		Prev:  g.prev,
		PPrev: g.pprev,
		Ofst:  g.ofst,
	}
}

// Table 把洗牌表复制到 dst，返回复制的项数
func (g *Generator) Table(dst []uint32) int {
	return copy(dst, g.table[:])
}

// WriteState 以十六进制输出状态与各分量掩码
func (g *Generator) WriteState(w io.Writer) error {
	st := g.State()
	_, err := fmt.Fprintf(w,
		"s1 msk %x\ns2 msk %x\ns3 msk %x\ns1 %x\ns2 %x\ns3 %x\nout   %x\nprev  %x\npprev %x\nofst  %x\n",
		uint32(msk1), uint32(msk2), uint32(msk3),
		st.S1, st.S2, st.S3, st.Out, st.Prev, st.PPrev, st.Ofst)
	return err
}

// WriteTable 逐行输出洗牌表："<下标>. <十六进制值>"
func (g *Generator) WriteTable(w io.Writer) error {
	return WriteTable(w, g.table[:])
}

// WriteTable 按 "序号. 十六进制值" 每行一项输出 table
func WriteTable(w io.Writer, table []uint32) error {
	bw := bufio.NewWriter(w)
	for i, v := range table {
		if _, err := fmt.Fprintf(bw, "%d. %x\n", i, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
