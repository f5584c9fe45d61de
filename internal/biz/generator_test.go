package biz

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"

	"etaus/internal/conf"
	"etaus/pkg/etaus"
)

func newGeneratorUsecase(c *conf.Generator) *GeneratorUsecase {
	return NewGeneratorUsecase(c, fixedSeeds{seed: etaus.DefaultSeed}, testLogger)
}

func TestGeneratorUsecase_CreateAndDraw(t *testing.T) {
	uc := newGeneratorUsecase(nil)
	ctx := context.Background()

	s, err := uc.Create(ctx, SeedSpec{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != etaus.DefaultSeed {
		t.Errorf("Seed = %v, want default", s.Seed)
	}

	d, err := uc.Draw(ctx, s.ID, DrawRequest{Kind: DrawRaw, Count: 4})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{0x0a1c747a, 0x59837790, 0xa320d672, 0x15762ae6}
	for i := range want {
		if d.Uints[i] != want[i] {
			t.Errorf("raw[%d] = %#08x, want %#08x", i, d.Uints[i], want[i])
		}
	}

	info, err := uc.Get(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if info.Draws != 4 || info.State.Out != want[3] {
		t.Errorf("info = %+v", info)
	}
}

func TestGeneratorUsecase_DrawKinds(t *testing.T) {
	uc := newGeneratorUsecase(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		req    DrawRequest
		uints  []uint32
		floats []float64
	}{
		{"uniform", DrawRequest{Kind: DrawUniform, Count: 2}, nil, []float64{0.07899337727576494, 0.6993245556950569}},
		{"fraction53", DrawRequest{Kind: DrawFraction53, Count: 2}, nil, []float64{0.45826063220470326, 0.24695132064310132}},
		{"int", DrawRequest{Kind: DrawInt, Param: 10, Count: 4}, []uint32{0, 6, 7, 1}, nil},
		{"bits", DrawRequest{Kind: DrawBits, Param: 4, Count: 4}, []uint32{0, 5, 10, 1}, nil},
		{"bit", DrawRequest{Kind: DrawBit, Count: 4}, []uint32{0, 1, 1, 0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := uc.Create(ctx, SeedSpec{})
			if err != nil {
				t.Fatal(err)
			}
			d, err := uc.Draw(ctx, s.ID, tt.req)
			if err != nil {
				t.Fatal(err)
			}
			for i, w := range tt.uints {
				if d.Uints[i] != w {
					t.Errorf("Uints[%d] = %d, want %d", i, d.Uints[i], w)
				}
			}
			for i, w := range tt.floats {
				if d.Floats[i] != w {
					t.Errorf("Floats[%d] = %v, want %v", i, d.Floats[i], w)
				}
			}
		})
	}
}

func TestGeneratorUsecase_Validation(t *testing.T) {
	uc := newGeneratorUsecase(&conf.Generator{MaxDraw: 10})
	ctx := context.Background()
	s, err := uc.Create(ctx, SeedSpec{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		req  DrawRequest
	}{
		{"zero count", DrawRequest{Kind: DrawRaw, Count: 0}},
		{"count over max", DrawRequest{Kind: DrawRaw, Count: 11}},
		{"zero limit", DrawRequest{Kind: DrawInt, Count: 1}},
		{"zero bits", DrawRequest{Kind: DrawBits, Count: 1}},
		{"32 bits", DrawRequest{Kind: DrawBits, Param: 32, Count: 1}},
		{"unknown kind", DrawRequest{Kind: "gauss", Count: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Draw(ctx, s.ID, tt.req)
			if !errors.Is(err, ErrInvalidDraw) {
				t.Errorf("err = %v, want INVALID_DRAW", err)
			}
		})
	}

	if _, err := uc.Draw(ctx, "missing", DrawRequest{Kind: DrawRaw, Count: 1}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want SESSION_NOT_FOUND", err)
	}
}

func TestGeneratorUsecase_Seeds(t *testing.T) {
	uc := newGeneratorUsecase(nil)
	ctx := context.Background()

	degenerate := etaus.Seed{1, 2, 3}
	if _, err := uc.Create(ctx, SeedSpec{Seed: &degenerate}); !errors.Is(err, ErrSeedDegenerate) {
		t.Errorf("err = %v, want SEED_DEGENERATE", err)
	}
	// 短语 "5" 派生出 {5,5,5}，s2 < 8 退化
	if _, err := uc.Create(ctx, SeedSpec{Phrase: "5"}); !errors.Is(err, ErrSeedDegenerate) {
		t.Errorf("err = %v, want SEED_DEGENERATE", err)
	}

	s, err := uc.Create(ctx, SeedSpec{Phrase: "100"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != (etaus.Seed{100, 100, 100}) {
		t.Errorf("Seed = %v", s.Seed)
	}

	if _, err := uc.Draw(ctx, s.ID, DrawRequest{Kind: DrawRaw, Count: 100}); err != nil {
		t.Fatal(err)
	}
	seed := etaus.DefaultSeed
	info, err := uc.Reseed(ctx, s.ID, SeedSpec{Seed: &seed})
	if err != nil {
		t.Fatal(err)
	}
	if info.Draws != 0 || info.Seed != seed {
		t.Errorf("after reseed info = %+v", info)
	}
	d, err := uc.Draw(ctx, s.ID, DrawRequest{Kind: DrawRaw, Count: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d.Uints[0] != 0x0a1c747a {
		t.Errorf("first draw after reseed = %#08x", d.Uints[0])
	}
}

func TestGeneratorUsecase_Limits(t *testing.T) {
	uc := newGeneratorUsecase(&conf.Generator{MaxSessions: 2})
	ctx := context.Background()

	a, err := uc.Create(ctx, SeedSpec{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Create(ctx, SeedSpec{}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Create(ctx, SeedSpec{}); !errors.Is(err, ErrTooManySessions) {
		t.Errorf("err = %v, want TOO_MANY_SESSIONS", err)
	}

	if err := uc.Delete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if err := uc.Delete(ctx, a.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want SESSION_NOT_FOUND", err)
	}
	if _, err := uc.Create(ctx, SeedSpec{}); err != nil {
		t.Errorf("create after delete: %v", err)
	}
}

func TestGeneratorUsecase_Dump(t *testing.T) {
	uc := newGeneratorUsecase(nil)
	ctx := context.Background()
	s, err := uc.Create(ctx, SeedSpec{})
	if err != nil {
		t.Fatal(err)
	}

	table, err := uc.Table(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != etaus.TableSize || table[0] != 0xc561ce99 {
		t.Errorf("table len=%d [0]=%#08x", len(table), table[0])
	}

	var buf bytes.Buffer
	if err := uc.Dump(ctx, s.ID, &buf, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "pprev 80648625") || strings.Contains(buf.String(), "0. c561ce99") {
		t.Errorf("state dump = %q", buf.String())
	}
	buf.Reset()
	if err := uc.Dump(ctx, s.ID, &buf, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n0. c561ce99\n") {
		t.Error("table dump missing first entry")
	}
}

func TestGeneratorUsecase_ConcurrentDraws(t *testing.T) {
	uc := newGeneratorUsecase(nil)
	ctx := context.Background()
	s, err := uc.Create(ctx, SeedSpec{})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := uc.Draw(ctx, s.ID, DrawRequest{Kind: DrawRaw, Count: 10}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	info, _ := uc.Get(ctx, s.ID)
	if info.Draws != 8000 {
		t.Fatalf("Draws = %d, want 8000", info.Draws)
	}
	// 会话锁保证了调用串行化：状态与单线程抽取 8000 次一致
	g := etaus.New(etaus.DefaultSeed)
	for i := 0; i < 8000; i++ {
		g.Next()
	}
	if info.State != g.State() {
		t.Errorf("state after concurrent draws = %+v, want %+v", info.State, g.State())
	}
}
