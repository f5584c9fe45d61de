package service

import (
	"context"
	"time"

	v1 "etaus/api/etaus/v1"
	"etaus/internal/biz"
)

// RunTemplate 同步执行模板测试
func (s *GeneratorService) RunTemplate(ctx context.Context, req *v1.TemplateRunRequest) (*v1.TemplateRunReply, error) {
	cfg, err := toTemplateConfig(req)
	if err != nil {
		return nil, err
	}
	report, err := s.tmpl.Run(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return toTemplateRunReply(report, true), nil
}

// ListTemplateRuns 最近的测试报告
func (s *GeneratorService) ListTemplateRuns(ctx context.Context, req *v1.ListTemplateRunsRequest) (*v1.ListTemplateRunsReply, error) {
	reports, err := s.tmpl.List(ctx, int(req.Limit))
	if err != nil {
		s.log.Errorf("list template runs failed: %v", err)
		return nil, err
	}
	runs := make([]*v1.TemplateRunReply, 0, len(reports))
	for _, r := range reports {
		runs = append(runs, toTemplateRunReply(r, false))
	}
	return &v1.ListTemplateRunsReply{Runs: runs}, nil
}

// GetTemplateRun 查询单个报告，包含卡方明细
func (s *GeneratorService) GetTemplateRun(ctx context.Context, req *v1.GetTemplateRunRequest) (*v1.TemplateRunReply, error) {
	report, err := s.tmpl.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return toTemplateRunReply(report, true), nil
}

// EnqueueTemplateJob 投递异步测试任务
func (s *GeneratorService) EnqueueTemplateJob(ctx context.Context, req *v1.TemplateRunRequest) (*v1.EnqueueTemplateJobReply, error) {
	cfg, err := toTemplateConfig(req)
	if err != nil {
		return nil, err
	}
	id, err := s.tmpl.Enqueue(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &v1.EnqueueTemplateJobReply{JobId: id}, nil
}

// VerifyGolden 黄金向量校验
func (s *GeneratorService) VerifyGolden(ctx context.Context, req *v1.VerifyGoldenRequest) (*v1.VerifyGoldenReply, error) {
	seed, err := toSeed(req.Seed)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, errInvalidSeed
	}
	res, err := s.golden.Verify(ctx, *seed, int(req.N))
	if err != nil {
		return nil, err
	}
	return &v1.VerifyGoldenReply{
		Seed:          fromSeed(res.Seed),
		Status:        res.Status,
		FirstMismatch: int32(res.FirstMismatch),
		Values:        res.Values,
		Recorded:      res.Recorded,
	}, nil
}

func toTemplateConfig(req *v1.TemplateRunRequest) (biz.TemplateConfig, error) {
	seed, err := toSeed(req.Seed)
	if err != nil {
		return biz.TemplateConfig{}, err
	}
	reseed, err := toSeed(req.ReseedSeed)
	if err != nil {
		return biz.TemplateConfig{}, err
	}
	return biz.TemplateConfig{
		Size:       int(req.Size),
		Samples:    int(req.Samples),
		Seed:       biz.SeedSpec{Seed: seed, Phrase: req.Phrase},
		ReseedAt:   int(req.ReseedAt),
		ReseedSeed: reseed,
		Alpha:      req.Alpha,
	}, nil
}

func toTemplateRunReply(r *biz.TemplateReport, withRows bool) *v1.TemplateRunReply {
	reply := &v1.TemplateRunReply{
		Id:         r.ID,
		Size:       int32(r.Size),
		Samples:    int32(r.Samples),
		Seed:       fromSeed(r.Seed),
		ReseedAt:   int32(r.ReseedAt),
		Matches:    r.Matches,
		WrapAround: r.WrapAround,
		WrapSample: int32(r.WrapSample),
		Chisq:      r.ChiSq.Stat,
		Df:         int32(r.ChiSq.DF),
		Pvalue:     r.ChiSq.PValue,
		Alpha:      r.Alpha,
		Pass:       r.Pass,
		ElapsedMs:  r.Elapsed.Milliseconds(),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.ReseedSeed != nil {
		reply.ReseedSeed = fromSeed(*r.ReseedSeed)
	}
	if withRows {
		for _, row := range r.ChiSq.Rows {
			reply.Rows = append(reply.Rows, &v1.ChiSqRow{
				Bin:      int32(row.Bin),
				Actual:   row.Actual,
				Expected: row.Expected,
				Diff:     row.Diff,
				Chisq:    row.ChiSq,
			})
		}
	}
	return reply
}
