package etaus

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerator_GoldenVectors(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
		want []uint32
	}{
		{
			"default seed",
			DefaultSeed,
			[]uint32{0x0a1c747a, 0x59837790, 0xa320d672, 0x15762ae6, 0xd57de144, 0x6150566b, 0xd7dc7b7e, 0x372b7ea4},
		},
		{
			"deadbeef",
			Seed{0xdeadbeef, 0xcafebabe, 0x8badf00d},
			[]uint32{0x94a9938b, 0xee74a759, 0xbdd877eb, 0xec8536c2},
		},
		{
			// 三个分量全部退化，输出恒为 0
			"degenerate 1,2,3",
			Seed{1, 2, 3},
			[]uint32{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.seed)
			for i, want := range tt.want {
				if got := g.Next(); got != want {
					t.Fatalf("Next() #%d = %#08x, want %#08x", i, got, want)
				}
			}
		})
	}
}

func TestGenerator_SeedState(t *testing.T) {
	g := New(DefaultSeed)
	st := g.State()
	want := State{S1: 0xa9e88b6f, S2: 0x0e4eaf81, S3: 0x0bad6dd5, Out: 0xac0b493b, Prev: 0x7cd18c70, PPrev: 0x80648625}
	if st != want {
		t.Fatalf("State() after seed = %+v, want %+v", st, want)
	}
	if g.table[0] != 0xc561ce99 || g.table[1] != 0x4cd76afe {
		t.Errorf("table[0:2] = %#08x %#08x", g.table[0], g.table[1])
	}
	// 播种的每一步都写 out，最后一项正是表尾
	if g.table[TableSize-1] != st.Out {
		t.Errorf("table[last] = %#08x, want out %#08x", g.table[TableSize-1], st.Out)
	}
}

func TestGenerator_HistoryOrder(t *testing.T) {
	g := New(DefaultSeed)
	outs := make([]uint32, 10)
	for i := range outs {
		outs[i] = g.Next()
	}
	st := g.State()
	if st.Out != outs[9] || st.Prev != outs[8] || st.PPrev != outs[7] {
		t.Fatalf("history = %#08x/%#08x/%#08x, want %#08x/%#08x/%#08x",
			st.Out, st.Prev, st.PPrev, outs[9], outs[8], outs[7])
	}
	if st.S1 != 0x6002d804 || st.S2 != 0xa08c3aa9 || st.S3 != 0x05fbff22 {
		t.Errorf("taus state = %#08x %#08x %#08x", st.S1, st.S2, st.S3)
	}
}

func TestGenerator_SeedFillsTable(t *testing.T) {
	seed := Seed{0xdeadbeef, 0xcafebabe, 0x8badf00d}
	g := New(seed)

	ref := &Generator{s1: seed[0], s2: seed[1], s3: seed[2]}
	for i := 0; i < WarmUp+3; i++ {
		ref.step()
	}
	for i := 0; i < TableSize; i++ {
		if want := ref.step(); g.table[i] != want {
			t.Fatalf("table[%d] = %#08x, want %#08x", i, g.table[i], want)
		}
	}
}

func TestGenerator_Reseed(t *testing.T) {
	g := New(DefaultSeed)
	for i := 0; i < 5000; i++ {
		g.Next()
	}

	g.Seed(Seed{1, 2, 3})
	for i := 0; i < 3; i++ {
		if v := g.Next(); v != 0 {
			t.Fatalf("after reseed {1,2,3}: Next() = %#08x, want 0", v)
		}
	}

	g.Seed(DefaultSeed)
	fresh := New(DefaultSeed)
	for i := 0; i < 1000; i++ {
		if a, b := g.Next(), fresh.Next(); a != b {
			t.Fatalf("reseeded stream diverges at %d: %#08x != %#08x", i, a, b)
		}
	}
}

func TestGenerator_ReseedKeepsOfst(t *testing.T) {
	g := New(DefaultSeed)
	for i := 0; i < 100; i++ {
		g.Next()
	}
	before := g.State().Ofst
	g.Seed(Seed{1, 2, 3})
	if got := g.State().Ofst; got != before {
		t.Fatalf("ofst after reseed = %d, want %d", got, before)
	}
	if New(Seed{1, 2, 3}).State().Ofst != 0 {
		t.Error("fresh generator ofst should be 0")
	}
}

func TestGenerator_DistinctSeeds(t *testing.T) {
	a := New(DefaultSeed)
	b := New(Seed{0xdeadbeef, 0xcafebabe, 0x8badf00d})
	same := 0
	for i := 0; i < 1000; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same > 1 {
		t.Errorf("%d of 1000 outputs coincide", same)
	}
}

func TestGenerator_OffsetRange(t *testing.T) {
	for _, prev := range []uint32{0, 1, 0x3ffff, 0x40000, 0x7fffffff, 0x80000000, 0xffffffff} {
		g := New(DefaultSeed)
		g.prev = prev
		g.Next()
		ofst := g.State().Ofst
		if ofst >= TableSize || ofst != prev>>18 {
			t.Errorf("prev=%#08x: ofst = %d", prev, ofst)
		}
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct {
		seed Seed
		want bool
	}{
		{Seed{1, 2, 3}, true},
		{Seed{2, 8, 16}, false},
		{Seed{1, 8, 16}, true},
		{Seed{2, 7, 16}, true},
		{Seed{2, 8, 15}, true},
		{DefaultSeed, false},
	}
	for _, tt := range tests {
		if got := Degenerate(tt.seed); got != tt.want {
			t.Errorf("Degenerate(%v) = %v, want %v", tt.seed, got, tt.want)
		}
	}
}

func TestGenerator_Dump(t *testing.T) {
	g := New(DefaultSeed)
	before := g.State()

	var buf bytes.Buffer
	if err := g.WriteState(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "s1 a9e88b6f") || !strings.Contains(buf.String(), "s1 msk fffffffe") {
		t.Errorf("WriteState() = %q", buf.String())
	}

	buf.Reset()
	if err := g.WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != TableSize || lines[0] != "0. c561ce99" {
		t.Errorf("WriteTable() lines = %d, first = %q", len(lines), lines[0])
	}

	dst := make([]uint32, TableSize+10)
	if n := g.Table(dst); n != TableSize {
		t.Errorf("Table() = %d, want %d", n, TableSize)
	}
	if g.State() != before {
		t.Error("dump mutated generator state")
	}
	if got := g.Next(); got != 0x0a1c747a {
		t.Errorf("Next() after dump = %#08x", got)
	}
}

func BenchmarkGenerator_Next(b *testing.B) {
	g := New(DefaultSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Next()
	}
}

func BenchmarkGenerator_Seed(b *testing.B) {
	g := New(DefaultSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Seed(DefaultSeed)
	}
}
