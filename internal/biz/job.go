package biz

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/json"

	"etaus/pkg/etaus"
)

// jobCodec 与 HTTP 层共用 kratos 注册的 json 编解码器
var jobCodec = encoding.GetCodec(json.Name)

// TemplateJob 异步模板测试任务在队列中的载荷
type TemplateJob struct {
	Size       int         `json:"size"`
	Samples    int         `json:"samples"`
	Seed       *etaus.Seed `json:"seed,omitempty"`
	Phrase     string      `json:"phrase,omitempty"`
	ReseedAt   int         `json:"reseed_at,omitempty"`
	ReseedSeed *etaus.Seed `json:"reseed_seed,omitempty"`
	Alpha      float64     `json:"alpha"`
}

// NewTemplateJob 由测试参数构造任务
func NewTemplateJob(cfg TemplateConfig) TemplateJob {
	return TemplateJob{
		Size:       cfg.Size,
		Samples:    cfg.Samples,
		Seed:       cfg.Seed.Seed,
		Phrase:     cfg.Seed.Phrase,
		ReseedAt:   cfg.ReseedAt,
		ReseedSeed: cfg.ReseedSeed,
		Alpha:      cfg.Alpha,
	}
}

// Config 还原为测试参数
func (j TemplateJob) Config() TemplateConfig {
	return TemplateConfig{
		Size:       j.Size,
		Samples:    j.Samples,
		Seed:       SeedSpec{Seed: j.Seed, Phrase: j.Phrase},
		ReseedAt:   j.ReseedAt,
		ReseedSeed: j.ReseedSeed,
		Alpha:      j.Alpha,
	}
}

// Marshal 编码为队列消息
func (j TemplateJob) Marshal() ([]byte, error) {
	return jobCodec.Marshal(j)
}

// UnmarshalTemplateJob 解码队列消息
func UnmarshalTemplateJob(payload []byte) (TemplateJob, error) {
	var j TemplateJob
	if err := jobCodec.Unmarshal(payload, &j); err != nil {
		return j, fmt.Errorf("decode template job: %w", err)
	}
	return j, nil
}
