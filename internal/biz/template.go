package biz

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"etaus/internal/conf"
	"etaus/pkg/chisq"
	"etaus/pkg/etaus"
	"etaus/pkg/fifo"
)

const (
	defaultTemplateSize    = 1024
	defaultTemplateSamples = 1000000
	defaultAlpha           = 0.05

	maxTemplateSize    = 1 << 16
	maxTemplateSamples = 100000000

	// 每隔多少个样本检查一次 ctx
	cancelCheckInterval = 4096
)

// TemplateConfig 模板匹配测试参数
type TemplateConfig struct {
	Size    int      // 模板与样本队列长度
	Samples int      // 样本数
	Seed    SeedSpec // 初始种子
	// ReseedAt 大于 0 时，在第 ReseedAt 个样本之前用 ReseedSeed 重新播种
	ReseedAt   int
	ReseedSeed *etaus.Seed
	Alpha      float64 // 显著性水平
}

// TemplateReport 模板匹配测试报告
type TemplateReport struct {
	ID         int64
	Size       int
	Samples    int
	Seed       etaus.Seed
	ReseedAt   int
	ReseedSeed *etaus.Seed
	Matches    []int64 // Matches[k] 为恰好匹配 k 个位置的样本数，长度 Size+1
	// WrapAround 整个窗口都与模板一致，测试提前终止
	WrapAround bool
	WrapSample int // 发生 wrap-around 的样本序号（从 1 开始）
	ChiSq      chisq.Result
	Alpha      float64
	Pass       bool
	Elapsed    time.Duration
	CreatedAt  time.Time
}

// TemplateRepo 测试报告仓储接口
type TemplateRepo interface {
	// Save 保存报告并回填 ID
	Save(ctx context.Context, report *TemplateReport) error
	// Get 根据 ID 查询报告
	Get(ctx context.Context, id int64) (*TemplateReport, error)
	// List 按时间倒序列出最近的报告
	List(ctx context.Context, limit int) ([]*TemplateReport, error)
}

// ReportPublisher 报告发布接口
type ReportPublisher interface {
	// PublishReport 发布测试完成事件
	PublishReport(ctx context.Context, report *TemplateReport) error
}

// TemplateJobQueue 异步测试任务队列
type TemplateJobQueue interface {
	// Enqueue 投递任务，返回任务 ID
	Enqueue(ctx context.Context, cfg TemplateConfig) (string, error)
}

// TemplateUsecase 模板匹配测试用例
type TemplateUsecase struct {
	repo      TemplateRepo
	publisher ReportPublisher
	queue     TemplateJobQueue
	seeds     SeedSource
	defaults  TemplateConfig
	log       *log.Helper
}

// NewTemplateUsecase 创建模板测试用例
func NewTemplateUsecase(
	c *conf.Template,
	repo TemplateRepo,
	publisher ReportPublisher,
	queue TemplateJobQueue,
	seeds SeedSource,
	logger log.Logger,
) *TemplateUsecase {
	defaults := TemplateConfig{
		Size:    defaultTemplateSize,
		Samples: defaultTemplateSamples,
		Alpha:   defaultAlpha,
	}
	if c != nil {
		if c.Size > 0 {
			defaults.Size = int(c.Size)
		}
		if c.Samples > 0 {
			defaults.Samples = int(c.Samples)
		}
		if c.Alpha > 0 {
			defaults.Alpha = c.Alpha
		}
	}
	return &TemplateUsecase{
		repo:      repo,
		publisher: publisher,
		queue:     queue,
		seeds:     seeds,
		defaults:  defaults,
		log:       log.NewHelper(log.With(logger, "module", "biz/template")),
	}
}

// Run 执行一次模板测试，保存并发布报告
func (uc *TemplateUsecase) Run(ctx context.Context, cfg TemplateConfig) (*TemplateReport, error) {
	cfg = uc.withDefaults(cfg)
	seed, err := cfg.Seed.resolve(uc.seeds, false)
	if err != nil {
		return nil, err
	}
	if cfg.ReseedSeed != nil && etaus.Degenerate(*cfg.ReseedSeed) {
		uc.log.Warnf("reseed seed %v is degenerate, output after sample %d will be constant", *cfg.ReseedSeed, cfg.ReseedAt)
	}

	uc.log.Infof("template test started: size=%d samples=%d seed=%08x/%08x/%08x",
		cfg.Size, cfg.Samples, seed[0], seed[1], seed[2])
	report, err := RunTemplate(ctx, seed, cfg)
	if err != nil {
		uc.log.Errorf("template test failed: %v", err)
		return nil, err
	}
	uc.log.Infof("template test finished: chisq=%.4f df=%d p=%.4f pass=%v wrap=%v elapsed=%s",
		report.ChiSq.Stat, report.ChiSq.DF, report.ChiSq.PValue, report.Pass, report.WrapAround, report.Elapsed)

	if err := uc.repo.Save(ctx, report); err != nil {
		uc.log.Errorf("save template report failed: %v", err)
		return nil, err
	}

	// 发布失败不影响结果
	if err := uc.publisher.PublishReport(ctx, report); err != nil {
		uc.log.Errorf("publish template report failed: id=%d err=%v", report.ID, err)
	}
	return report, nil
}

// Enqueue 投递异步测试任务
func (uc *TemplateUsecase) Enqueue(ctx context.Context, cfg TemplateConfig) (string, error) {
	cfg = uc.withDefaults(cfg)
	if err := validateTemplate(cfg); err != nil {
		return "", err
	}
	id, err := uc.queue.Enqueue(ctx, cfg)
	if err != nil {
		uc.log.Errorf("enqueue template job failed: %v", err)
		return "", err
	}
	uc.log.Infof("template job enqueued: id=%s", id)
	return id, nil
}

// Get 查询报告
func (uc *TemplateUsecase) Get(ctx context.Context, id int64) (*TemplateReport, error) {
	return uc.repo.Get(ctx, id)
}

// List 列出最近的报告
func (uc *TemplateUsecase) List(ctx context.Context, limit int) ([]*TemplateReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.repo.List(ctx, limit)
}

func (uc *TemplateUsecase) withDefaults(cfg TemplateConfig) TemplateConfig {
	if cfg.Size == 0 {
		cfg.Size = uc.defaults.Size
	}
	if cfg.Samples == 0 {
		cfg.Samples = uc.defaults.Samples
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = uc.defaults.Alpha
	}
	return cfg
}

func validateTemplate(cfg TemplateConfig) error {
	switch {
	case cfg.Size < 1 || cfg.Size > maxTemplateSize:
		return errors.BadRequest(ErrInvalidTemplate.Reason, fmt.Sprintf("size must be in [1, %d]", maxTemplateSize))
	case cfg.Samples < 1 || cfg.Samples > maxTemplateSamples:
		return errors.BadRequest(ErrInvalidTemplate.Reason, fmt.Sprintf("samples must be in [1, %d]", maxTemplateSamples))
	case cfg.ReseedAt < 0 || cfg.ReseedAt >= cfg.Samples:
		return errors.BadRequest(ErrInvalidTemplate.Reason, "reseed_at must be in [0, samples)")
	case cfg.ReseedAt > 0 && cfg.ReseedSeed == nil:
		return errors.BadRequest(ErrInvalidTemplate.Reason, "reseed_at requires reseed_seed")
	case cfg.Alpha <= 0 || cfg.Alpha >= 1:
		return errors.BadRequest(ErrInvalidTemplate.Reason, "alpha must be in (0, 1)")
	}
	return nil
}

// RunTemplate 模板匹配测试本身，不涉及存储
//
// 先生成 Size 位的随机模板，再生成 Size 位的样本队列；之后每个样本弹出最旧的一位、
// 压入新的一位，从最旧的一端与模板比较连续匹配的长度。匹配 k 位的概率为 2^-(k+1)，
// 全部样本结束后对匹配长度分布做卡方检验。
func RunTemplate(ctx context.Context, seed etaus.Seed, cfg TemplateConfig) (*TemplateReport, error) {
	if err := validateTemplate(cfg); err != nil {
		return nil, err
	}
	start := time.Now()
	g := etaus.New(seed)

	tmpl := fifo.New(cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		tmpl.Push(uint8(g.Bit()))
	}
	act := fifo.New(cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		act.Push(uint8(g.Bit()))
	}

	report := &TemplateReport{
		Size:       cfg.Size,
		Samples:    cfg.Samples,
		Seed:       seed,
		ReseedAt:   cfg.ReseedAt,
		ReseedSeed: cfg.ReseedSeed,
		Matches:    make([]int64, cfg.Size+1),
		Alpha:      cfg.Alpha,
		CreatedAt:  start,
	}

	for i := 0; i < cfg.Samples; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if cfg.ReseedAt > 0 && i == cfg.ReseedAt {
			g.Seed(*cfg.ReseedSeed)
		}
		act.Pop()
		act.Push(uint8(g.Bit()))
		count := fifo.MatchDepth(act, tmpl)
		if count >= cfg.Size {
			report.WrapAround = true
			report.WrapSample = i + 1
			break
		}
		report.Matches[count]++
	}

	if !report.WrapAround {
		observed := make([]float64, len(report.Matches))
		for i, m := range report.Matches {
			observed[i] = float64(m)
		}
		expected := chisq.Geometric(float64(cfg.Samples), len(observed))
		report.ChiSq = chisq.Test(observed, expected, chisq.MinExpected)
		report.Pass = report.ChiSq.PValue >= cfg.Alpha
	}
	report.Elapsed = time.Since(start)
	return report, nil
}
