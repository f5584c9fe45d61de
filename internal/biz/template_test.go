package biz

import (
	"context"
	"errors"
	"math"
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"

	"etaus/internal/conf"
	"etaus/pkg/etaus"
)

func TestRunTemplate(t *testing.T) {
	cfg := TemplateConfig{Size: 64, Samples: 100000, Alpha: 0.05}
	report, err := RunTemplate(context.Background(), etaus.DefaultSeed, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if report.WrapAround {
		t.Fatal("unexpected wrap-around")
	}

	want := []int64{50042, 24954, 12617, 6296, 3019, 1578, 740, 351}
	for i, w := range want {
		if report.Matches[i] != w {
			t.Errorf("Matches[%d] = %d, want %d", i, report.Matches[i], w)
		}
	}
	var total int64
	for _, m := range report.Matches {
		total += m
	}
	if total != int64(cfg.Samples) {
		t.Errorf("tallied %d samples, want %d", total, cfg.Samples)
	}

	// 100000 * 2^-(k+1) >= 10 的分组为 k = 0..12
	if report.ChiSq.Bins != 13 || report.ChiSq.DF != 12 {
		t.Errorf("Bins=%d DF=%d", report.ChiSq.Bins, report.ChiSq.DF)
	}
	if math.Abs(report.ChiSq.Stat-16.00160875) > 1e-6 {
		t.Errorf("chi-square = %v, want 16.00160875", report.ChiSq.Stat)
	}
	if math.Abs(report.ChiSq.PValue-0.19116238949683) > 1e-9 {
		t.Errorf("p-value = %v", report.ChiSq.PValue)
	}
	if !report.Pass {
		t.Error("template test should pass at alpha 0.05")
	}
}

func TestRunTemplate_OtherSeed(t *testing.T) {
	cfg := TemplateConfig{Size: 64, Samples: 100000, Alpha: 0.05}
	report, err := RunTemplate(context.Background(), etaus.Seed{0xdeadbeef, 0xcafebabe, 0x8badf00d}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(report.ChiSq.Stat-5.16876875) > 1e-6 || !report.Pass {
		t.Errorf("chi-square = %v pass = %v", report.ChiSq.Stat, report.Pass)
	}
}

func TestRunTemplate_DegenerateReseed(t *testing.T) {
	// 原始测试程序在一半样本处用 {1,2,3} 重新播种，之后输出恒为 0
	reseed := etaus.Seed{1, 2, 3}
	cfg := TemplateConfig{Size: 64, Samples: 100000, ReseedAt: 50000, ReseedSeed: &reseed, Alpha: 0.05}
	report, err := RunTemplate(context.Background(), etaus.DefaultSeed, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if report.Matches[0] != 25021 || report.Matches[1] != 62423 {
		t.Errorf("Matches[0:2] = %v", report.Matches[:2])
	}
	if report.Pass || report.ChiSq.Stat < 70000 {
		t.Errorf("chi-square = %v, constant stream must fail", report.ChiSq.Stat)
	}
}

func TestRunTemplate_WrapAround(t *testing.T) {
	// 窗口只有 1 位时，任何与模板相同的样本都是完整匹配
	cfg := TemplateConfig{Size: 1, Samples: 1000, Alpha: 0.05}
	report, err := RunTemplate(context.Background(), etaus.DefaultSeed, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !report.WrapAround || report.WrapSample < 1 || report.Pass {
		t.Errorf("report = %+v, want wrap-around", report)
	}
	if report.ChiSq.Bins != 0 {
		t.Error("chi-square must not be computed after wrap-around")
	}
}

func TestRunTemplate_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunTemplate(ctx, etaus.DefaultSeed, TemplateConfig{Size: 64, Samples: 100000, Alpha: 0.05})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRunTemplate_Validation(t *testing.T) {
	seed := etaus.DefaultSeed
	tests := []struct {
		name string
		cfg  TemplateConfig
	}{
		{"zero size", TemplateConfig{Size: 0, Samples: 10, Alpha: 0.05}},
		{"huge size", TemplateConfig{Size: maxTemplateSize + 1, Samples: 10, Alpha: 0.05}},
		{"zero samples", TemplateConfig{Size: 8, Samples: 0, Alpha: 0.05}},
		{"reseed past end", TemplateConfig{Size: 8, Samples: 10, ReseedAt: 10, ReseedSeed: &seed, Alpha: 0.05}},
		{"reseed without seed", TemplateConfig{Size: 8, Samples: 10, ReseedAt: 5, Alpha: 0.05}},
		{"alpha", TemplateConfig{Size: 8, Samples: 10, Alpha: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunTemplate(context.Background(), seed, tt.cfg)
			if !kerrors.Is(err, ErrInvalidTemplate) {
				t.Errorf("err = %v, want INVALID_TEMPLATE", err)
			}
		})
	}
}

func TestTemplateUsecase_Run(t *testing.T) {
	repo := &memTemplateRepo{}
	pub := &recordingPublisher{err: errors.New("broker down")}
	uc := NewTemplateUsecase(&conf.Template{Size: 64, Samples: 100000}, repo, pub, &memQueue{},
		fixedSeeds{seed: etaus.DefaultSeed}, testLogger)
	ctx := context.Background()

	report, err := uc.Run(ctx, TemplateConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if report.ID != 1 || report.Size != 64 || report.Alpha != defaultAlpha {
		t.Errorf("report = %+v", report)
	}
	// 发布失败只记录日志
	if len(pub.published) != 1 {
		t.Errorf("published %d reports", len(pub.published))
	}

	got, err := uc.Get(ctx, report.ID)
	if err != nil || got != report {
		t.Errorf("Get() = %v, %v", got, err)
	}
	list, err := uc.List(ctx, 0)
	if err != nil || len(list) != 1 {
		t.Errorf("List() = %v, %v", list, err)
	}
	if _, err := uc.Get(ctx, 42); !kerrors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, want RUN_NOT_FOUND", err)
	}
}

func TestTemplateUsecase_RunSaveError(t *testing.T) {
	repo := &memTemplateRepo{err: errors.New("db down")}
	pub := &recordingPublisher{}
	uc := NewTemplateUsecase(nil, repo, pub, &memQueue{}, fixedSeeds{seed: etaus.DefaultSeed}, testLogger)

	if _, err := uc.Run(context.Background(), TemplateConfig{Size: 16, Samples: 1000}); err == nil {
		t.Fatal("expected save error")
	}
	if len(pub.published) != 0 {
		t.Error("report published although it was not saved")
	}
}

func TestTemplateUsecase_Enqueue(t *testing.T) {
	q := &memQueue{}
	uc := NewTemplateUsecase(&conf.Template{Size: 128}, &memTemplateRepo{}, &recordingPublisher{}, q,
		fixedSeeds{seed: etaus.DefaultSeed}, testLogger)
	ctx := context.Background()

	id, err := uc.Enqueue(ctx, TemplateConfig{Samples: 5000})
	if err != nil {
		t.Fatal(err)
	}
	if id != "1-0" || len(q.jobs) != 1 || q.jobs[0].Size != 128 || q.jobs[0].Samples != 5000 {
		t.Errorf("id=%s jobs=%+v", id, q.jobs)
	}

	if _, err := uc.Enqueue(ctx, TemplateConfig{Size: -1}); !kerrors.Is(err, ErrInvalidTemplate) {
		t.Errorf("err = %v, want INVALID_TEMPLATE", err)
	}
}
