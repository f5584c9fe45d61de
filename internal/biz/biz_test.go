package biz

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/go-kratos/kratos/v2/log"

	"etaus/pkg/etaus"
)

var testLogger = log.NewStdLogger(io.Discard)

// fixedSeeds 测试用种子源，Random 总是返回同一组种子
type fixedSeeds struct {
	seed etaus.Seed
}

func (f fixedSeeds) Random() etaus.Seed { return f.seed }

func (f fixedSeeds) FromPhrase(phrase string) etaus.Seed {
	n, _ := strconv.Atoi(phrase)
	return etaus.Seed{uint32(n), uint32(n), uint32(n)}
}

type memTemplateRepo struct {
	mu      sync.Mutex
	reports []*TemplateReport
	err     error
}

func (r *memTemplateRepo) Save(ctx context.Context, report *TemplateReport) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
	report.ID = int64(len(r.reports))
	return nil
}

func (r *memTemplateRepo) Get(ctx context.Context, id int64) (*TemplateReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 1 || int(id) > len(r.reports) {
		return nil, ErrRunNotFound
	}
	return r.reports[id-1], nil
}

func (r *memTemplateRepo) List(ctx context.Context, limit int) ([]*TemplateReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*TemplateReport
	for i := len(r.reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.reports[i])
	}
	return out, nil
}

type recordingPublisher struct {
	published []*TemplateReport
	err       error
}

func (p *recordingPublisher) PublishReport(ctx context.Context, report *TemplateReport) error {
	p.published = append(p.published, report)
	return p.err
}

type memQueue struct {
	jobs []TemplateConfig
}

func (q *memQueue) Enqueue(ctx context.Context, cfg TemplateConfig) (string, error) {
	q.jobs = append(q.jobs, cfg)
	return strconv.Itoa(len(q.jobs)) + "-0", nil
}

type memGoldenRepo struct {
	vectors map[etaus.Seed][]uint32
	saves   int
}

func (r *memGoldenRepo) Get(ctx context.Context, seed etaus.Seed) ([]uint32, error) {
	v, ok := r.vectors[seed]
	if !ok {
		return nil, ErrGoldenNotFound
	}
	return v, nil
}

func (r *memGoldenRepo) Save(ctx context.Context, seed etaus.Seed, values []uint32) error {
	if r.vectors == nil {
		r.vectors = make(map[etaus.Seed][]uint32)
	}
	r.vectors[seed] = append([]uint32(nil), values...)
	r.saves++
	return nil
}
