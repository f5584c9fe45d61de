package data

import (
	"sync"
	"time"

	"etaus/internal/biz"
	"etaus/internal/conf"
	"etaus/pkg/etaus"
	"etaus/pkg/random"

	"github.com/go-kratos/kratos/v2/log"
)

type seedSource struct {
	mu  sync.Mutex
	rng *random.XorShift64Star
}

// NewSeedSource 创建种子源，配置的初始值为 0 时取当前时间
func NewSeedSource(c *conf.Generator, logger log.Logger) biz.SeedSource {
	start := c.GetSeedSource()
	if start == 0 {
		start = uint64(time.Now().UnixNano())
	} else {
		log.NewHelper(log.With(logger, "module", "data/seed")).Infof("seed source fixed: %d", start)
	}
	return &seedSource{rng: random.NewXorShift64Star(start)}
}

func (s *seedSource) Random() etaus.Seed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Seed()
}

func (s *seedSource) FromPhrase(phrase string) etaus.Seed {
	return random.FromPhrase(phrase)
}
