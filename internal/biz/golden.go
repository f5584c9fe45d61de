package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"etaus/pkg/etaus"
)

// 黄金向量校验结果
const (
	GoldenRecorded = "RECORDED"
	GoldenMatch    = "MATCH"
	GoldenMismatch = "MISMATCH"
)

const maxGoldenLen = 4096

// GoldenResult 校验结果
type GoldenResult struct {
	Seed          etaus.Seed
	Status        string
	FirstMismatch int // 第一个不一致的位置，没有则为 -1
	Values        []uint32
	Recorded      []uint32
}

// GoldenRepo 黄金向量仓储：每组种子对应新生成器的前 N 个输出
type GoldenRepo interface {
	// Get 读取已记录的向量，不存在时返回 ErrGoldenNotFound
	Get(ctx context.Context, seed etaus.Seed) ([]uint32, error)
	// Save 记录向量（覆盖）
	Save(ctx context.Context, seed etaus.Seed, values []uint32) error
}

// GoldenUsecase 跨进程、跨实现的确定性校验
type GoldenUsecase struct {
	repo GoldenRepo
	log  *log.Helper
}

// NewGoldenUsecase 创建黄金向量用例
func NewGoldenUsecase(repo GoldenRepo, logger log.Logger) *GoldenUsecase {
	return &GoldenUsecase{
		repo: repo,
		log:  log.NewHelper(log.With(logger, "module", "biz/golden")),
	}
}

// Vector 新生成器在 seed 下的前 n 个输出
func Vector(seed etaus.Seed, n int) []uint32 {
	g := etaus.New(seed)
	values := make([]uint32, n)
	for i := range values {
		values[i] = g.Next()
	}
	return values
}

// Verify 计算前 n 个输出并与已记录的向量比较
// 尚未记录时保存本次结果；已记录的向量更短且前缀一致时，用更长的结果覆盖。
func (uc *GoldenUsecase) Verify(ctx context.Context, seed etaus.Seed, n int) (*GoldenResult, error) {
	if n < 1 || n > maxGoldenLen {
		return nil, ErrInvalidGoldenLen
	}
	res := &GoldenResult{
		Seed:          seed,
		FirstMismatch: -1,
		Values:        Vector(seed, n),
	}

	recorded, err := uc.repo.Get(ctx, seed)
	if err != nil && !errors.Is(err, ErrGoldenNotFound) {
		uc.log.Errorf("load golden vector failed: %v", err)
		return nil, err
	}
	if err != nil {
		if err := uc.repo.Save(ctx, seed, res.Values); err != nil {
			uc.log.Errorf("save golden vector failed: %v", err)
			return nil, err
		}
		res.Status = GoldenRecorded
		uc.log.Infof("golden vector recorded: seed=%v n=%d", seed, n)
		return res, nil
	}

	res.Recorded = recorded
	m := len(recorded)
	if n < m {
		m = n
	}
	for i := 0; i < m; i++ {
		if recorded[i] != res.Values[i] {
			res.Status = GoldenMismatch
			res.FirstMismatch = i
			uc.log.Warnf("golden vector mismatch: seed=%v index=%d recorded=%08x got=%08x",
				seed, i, recorded[i], res.Values[i])
			return res, nil
		}
	}
	res.Status = GoldenMatch
	if n > len(recorded) {
		if err := uc.repo.Save(ctx, seed, res.Values); err != nil {
			uc.log.Errorf("extend golden vector failed: %v", err)
			return nil, err
		}
	}
	return res, nil
}
