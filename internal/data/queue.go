package data

import (
	"context"

	"etaus/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	keyStreamTemplate = "stream:template" // 异步模板测试任务流
	fieldPayload      = "payload"
)

type templateJobQueue struct {
	data *Data
	log  *log.Helper
}

// NewTemplateJobQueue 创建基于 Redis Stream 的任务队列
func NewTemplateJobQueue(data *Data, logger log.Logger) biz.TemplateJobQueue {
	return &templateJobQueue{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/queue")),
	}
}

// Enqueue XADD 一条任务，返回 stream 消息 ID
func (q *templateJobQueue) Enqueue(ctx context.Context, cfg biz.TemplateConfig) (string, error) {
	if q.data.redis == nil {
		return "", errRedisDisabled
	}
	body, err := biz.NewTemplateJob(cfg).Marshal()
	if err != nil {
		return "", err
	}
	id, err := q.data.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: keyStreamTemplate,
		Values: map[string]interface{}{fieldPayload: string(body)},
	}).Result()
	if err != nil {
		q.log.Errorf("XAdd failed: stream=%s err=%v", keyStreamTemplate, err)
		return "", err
	}
	return id, nil
}
