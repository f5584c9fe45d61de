package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"etaus/internal/biz"
)

// TemplateJobService 异步模板测试任务处理（从 Stream 消费）
type TemplateJobService struct {
	uc  *biz.TemplateUsecase
	log *log.Helper
}

// NewTemplateJobService 创建任务处理服务
func NewTemplateJobService(uc *biz.TemplateUsecase, logger log.Logger) *TemplateJobService {
	return &TemplateJobService{
		uc:  uc,
		log: log.NewHelper(log.With(logger, "module", "service/template_job")),
	}
}

// HandleTemplateJob 执行一条任务
// 返回 nil 时消息会被确认；无法解析或参数非法的任务重试也不会成功，直接丢弃。
func (s *TemplateJobService) HandleTemplateJob(ctx context.Context, streamID string, payload string) error {
	job, err := biz.UnmarshalTemplateJob([]byte(payload))
	if err != nil {
		s.log.Warnf("drop malformed job: streamID=%s err=%v", streamID, err)
		return nil
	}

	report, err := s.uc.Run(ctx, job.Config())
	if err != nil {
		if errors.Code(err) == 400 {
			s.log.Warnf("drop invalid job: streamID=%s err=%v", streamID, err)
			return nil
		}
		s.log.Errorf("template job failed, keep pending: streamID=%s err=%v", streamID, err)
		return err
	}
	s.log.Infof("template job done: streamID=%s runID=%d pass=%v", streamID, report.ID, report.Pass)
	return nil
}
