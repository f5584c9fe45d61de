package data

import (
	"context"
	"errors"
	"time"

	"etaus/internal/biz"
	"etaus/pkg/chisq"
	"etaus/pkg/etaus"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

// jsonbCodec jsonb 列的编解码
var jsonbCodec = encoding.GetCodec(json.Name)

// templateRunPO 模板测试报告表
type templateRunPO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:run_id"`
	Size       int32     `gorm:"column:size;not null"`
	Samples    int64     `gorm:"column:samples;not null"`
	Seed1      int64     `gorm:"column:seed1;not null"` // uint32 存为 bigint
	Seed2      int64     `gorm:"column:seed2;not null"`
	Seed3      int64     `gorm:"column:seed3;not null"`
	ReseedAt   int64     `gorm:"column:reseed_at;default:0"`
	ReseedSeed []byte    `gorm:"column:reseed_seed;type:jsonb"`
	Matches    []byte    `gorm:"column:matches;type:jsonb;not null"` // 匹配长度直方图
	WrapAround bool      `gorm:"column:wrap_around;default:false"`
	WrapSample int64     `gorm:"column:wrap_sample;default:0"`
	ChiSq      []byte    `gorm:"column:chisq;type:jsonb"`
	Alpha      float64   `gorm:"column:alpha;not null"`
	Pass       bool      `gorm:"column:pass;not null"`
	ElapsedMs  int64     `gorm:"column:elapsed_ms"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (templateRunPO) TableName() string {
	return "template_runs"
}

type templateRepo struct {
	data *Data
	log  *log.Helper
}

// NewTemplateRepo 创建测试报告仓储
func NewTemplateRepo(data *Data, logger log.Logger) biz.TemplateRepo {
	return &templateRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/template")),
	}
}

// Save 保存报告并回填自增 ID
func (r *templateRepo) Save(ctx context.Context, report *biz.TemplateReport) error {
	po, err := toTemplateRunPO(report)
	if err != nil {
		return err
	}
	if err := r.data.db.WithContext(ctx).Create(po).Error; err != nil {
		r.log.Errorf("create template run failed: %v", err)
		return err
	}
	report.ID = po.ID
	report.CreatedAt = po.CreatedAt
	return nil
}

// Get 根据 ID 查询报告
func (r *templateRepo) Get(ctx context.Context, id int64) (*biz.TemplateReport, error) {
	var po templateRunPO
	if err := r.data.db.WithContext(ctx).Where("run_id = ?", id).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrRunNotFound
		}
		return nil, err
	}
	return fromTemplateRunPO(&po)
}

// List 按创建时间倒序
func (r *templateRepo) List(ctx context.Context, limit int) ([]*biz.TemplateReport, error) {
	var pos []templateRunPO
	if err := r.data.db.WithContext(ctx).
		Order("created_at DESC").
		Order("run_id DESC").
		Limit(limit).
		Find(&pos).Error; err != nil {
		return nil, err
	}

	reports := make([]*biz.TemplateReport, 0, len(pos))
	for i := range pos {
		report, err := fromTemplateRunPO(&pos[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func toTemplateRunPO(report *biz.TemplateReport) (*templateRunPO, error) {
	matches, err := jsonbCodec.Marshal(report.Matches)
	if err != nil {
		return nil, err
	}
	chi, err := jsonbCodec.Marshal(report.ChiSq)
	if err != nil {
		return nil, err
	}
	po := &templateRunPO{
		ID:         report.ID,
		Size:       int32(report.Size),
		Samples:    int64(report.Samples),
		Seed1:      int64(report.Seed[0]),
		Seed2:      int64(report.Seed[1]),
		Seed3:      int64(report.Seed[2]),
		ReseedAt:   int64(report.ReseedAt),
		Matches:    matches,
		WrapAround: report.WrapAround,
		WrapSample: int64(report.WrapSample),
		ChiSq:      chi,
		Alpha:      report.Alpha,
		Pass:       report.Pass,
		ElapsedMs:  report.Elapsed.Milliseconds(),
	}
	if report.ReseedSeed != nil {
		if po.ReseedSeed, err = jsonbCodec.Marshal(report.ReseedSeed); err != nil {
			return nil, err
		}
	}
	return po, nil
}

func fromTemplateRunPO(po *templateRunPO) (*biz.TemplateReport, error) {
	report := &biz.TemplateReport{
		ID:         po.ID,
		Size:       int(po.Size),
		Samples:    int(po.Samples),
		Seed:       etaus.Seed{uint32(po.Seed1), uint32(po.Seed2), uint32(po.Seed3)},
		ReseedAt:   int(po.ReseedAt),
		WrapAround: po.WrapAround,
		WrapSample: int(po.WrapSample),
		Alpha:      po.Alpha,
		Pass:       po.Pass,
		Elapsed:    time.Duration(po.ElapsedMs) * time.Millisecond,
		CreatedAt:  po.CreatedAt,
	}
	if err := jsonbCodec.Unmarshal(po.Matches, &report.Matches); err != nil {
		return nil, err
	}
	if len(po.ChiSq) > 0 {
		var res chisq.Result
		if err := jsonbCodec.Unmarshal(po.ChiSq, &res); err != nil {
			return nil, err
		}
		report.ChiSq = res
	}
	if len(po.ReseedSeed) > 0 && string(po.ReseedSeed) != "null" {
		var seed etaus.Seed
		if err := jsonbCodec.Unmarshal(po.ReseedSeed, &seed); err != nil {
			return nil, err
		}
		report.ReseedSeed = &seed
	}
	return report, nil
}
