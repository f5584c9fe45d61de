package data

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"etaus/internal/biz"
	"etaus/pkg/etaus"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

// keyGoldenPrefix 黄金向量 key 前缀，完整 key 为 golden:<s1>:<s2>:<s3>
const keyGoldenPrefix = "golden:"

type goldenRepo struct {
	data *Data
	log  *log.Helper
}

// NewGoldenRepo 创建黄金向量仓储
func NewGoldenRepo(data *Data, logger log.Logger) biz.GoldenRepo {
	return &goldenRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/golden")),
	}
}

func (r *goldenRepo) Get(ctx context.Context, seed etaus.Seed) ([]uint32, error) {
	if r.data.redis == nil {
		return nil, errRedisDisabled
	}
	val, err := r.data.redis.Get(ctx, goldenKey(seed)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, biz.ErrGoldenNotFound
		}
		return nil, err
	}
	return decodeVector(val)
}

func (r *goldenRepo) Save(ctx context.Context, seed etaus.Seed, values []uint32) error {
	if r.data.redis == nil {
		return errRedisDisabled
	}
	// 不过期
	if err := r.data.redis.Set(ctx, goldenKey(seed), encodeVector(values), 0).Err(); err != nil {
		r.log.Errorf("save golden vector failed: %v", err)
		return err
	}
	return nil
}

func goldenKey(seed etaus.Seed) string {
	return fmt.Sprintf("%s%d:%d:%d", keyGoldenPrefix, seed[0], seed[1], seed[2])
}

// encodeVector 逗号分隔的 8 位十六进制
func encodeVector(values []uint32) string {
	var b strings.Builder
	b.Grow(len(values) * 9)
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%08x", v)
	}
	return b.String()
}

func decodeVector(s string) ([]uint32, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid golden vector entry %d: %w", i, err)
		}
		values[i] = uint32(v)
	}
	return values, nil
}
