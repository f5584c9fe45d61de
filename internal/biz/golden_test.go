package biz

import (
	"context"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"

	"etaus/pkg/etaus"
)

func TestGoldenUsecase_Verify(t *testing.T) {
	repo := &memGoldenRepo{}
	uc := NewGoldenUsecase(repo, testLogger)
	ctx := context.Background()

	res, err := uc.Verify(ctx, etaus.DefaultSeed, 4)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != GoldenRecorded || res.Values[0] != 0x0a1c747a {
		t.Fatalf("first verify = %+v", res)
	}

	res, err = uc.Verify(ctx, etaus.DefaultSeed, 4)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != GoldenMatch || res.FirstMismatch != -1 {
		t.Errorf("second verify = %+v", res)
	}

	// 更长的向量：前缀一致则扩展记录
	res, err = uc.Verify(ctx, etaus.DefaultSeed, 8)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != GoldenMatch || len(repo.vectors[etaus.DefaultSeed]) != 8 || repo.saves != 2 {
		t.Errorf("extend verify = %+v saves=%d", res, repo.saves)
	}

	repo.vectors[etaus.DefaultSeed][2] ^= 1
	res, err = uc.Verify(ctx, etaus.DefaultSeed, 8)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != GoldenMismatch || res.FirstMismatch != 2 {
		t.Errorf("mismatch verify = %+v", res)
	}
}

func TestGoldenUsecase_DegenerateSeed(t *testing.T) {
	uc := NewGoldenUsecase(&memGoldenRepo{}, testLogger)
	res, err := uc.Verify(context.Background(), etaus.Seed{1, 2, 3}, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range res.Values {
		if v != 0 {
			t.Fatalf("Values[%d] = %#08x, want 0", i, v)
		}
	}
}

func TestGoldenUsecase_Length(t *testing.T) {
	uc := NewGoldenUsecase(&memGoldenRepo{}, testLogger)
	for _, n := range []int{0, maxGoldenLen + 1} {
		if _, err := uc.Verify(context.Background(), etaus.DefaultSeed, n); !errors.Is(err, ErrInvalidGoldenLen) {
			t.Errorf("n=%d: err = %v", n, err)
		}
	}
}
