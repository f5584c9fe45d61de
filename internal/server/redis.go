package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"etaus/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/redis/go-redis/v9"
)

var (
	redisClientInstance *redis.Client
	redisOnce           sync.Once
)

// RedisServer Redis 服务器包装
type RedisServer struct {
	client *redis.Client
	log    *log.Helper
}

// NewRedisServer 创建 Redis 服务器实例，未配置或连接失败时返回 nil。
// 客户端由任务消费者共享，只在返回的 cleanup 中关闭，此时所有 Server 已经停止。
func NewRedisServer(c *conf.Data, logger log.Logger) (*RedisServer, func()) {
	helper := log.NewHelper(log.With(logger, "module", "server/redis"))

	if c.GetRedis().GetAddr() == "" {
		helper.Warn("redis configuration is missing, redis server not initialized")
		return nil, func() {}
	}

	var initErr error
	redisOnce.Do(func() {
		redisClientInstance = redis.NewClient(&redis.Options{
			Addr:         c.GetRedis().GetAddr(),
			Password:     c.GetRedis().GetPassword(),
			DB:           int(c.GetRedis().GetDb()),
			ReadTimeout:  c.GetRedis().GetReadTimeout().AsDuration(),
			WriteTimeout: c.GetRedis().GetWriteTimeout().AsDuration(),
		})

		if err := redisClientInstance.Ping(context.Background()).Err(); err != nil {
			helper.Errorf("failed to connect to redis: %v", err)
			initErr = err
			redisClientInstance = nil
			return
		}
		helper.Info("redis client initialized successfully (singleton)")
	})

	if initErr != nil || redisClientInstance == nil {
		return nil, func() {}
	}

	rs := &RedisServer{
		client: redisClientInstance,
		log:    helper,
	}
	return rs, func() {
		if err := rs.Close(); err != nil {
			helper.Errorf("failed to close redis client: %v", err)
		}
	}
}

// Start 实现 Kratos Server 接口
func (s *RedisServer) Start(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	s.log.Info("redis server started")
	return nil
}

// Stop 实现 Kratos Server 接口。
// Kratos 并发停止各个 Server，消费者可能仍在确认消息，这里不关闭客户端。
func (s *RedisServer) Stop(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	s.log.Info("redis server stopping")
	return nil
}

// Close 关闭共享客户端
func (s *RedisServer) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Close(); err != nil {
		return err
	}
	s.log.Info("redis client closed")
	return nil
}

// Client 获取 Redis 客户端
func (s *RedisServer) Client() *redis.Client {
	if s == nil {
		return nil
	}
	return s.client
}

// ============================================================================
// Template Stream Server 异步模板测试任务
// ============================================================================

const (
	templateStream       = "stream:template"
	templateGroup        = "tmpl"
	templatePayloadField = "payload"
)

// TemplateStreamHandler 任务处理器接口
type TemplateStreamHandler interface {
	// HandleTemplateJob 返回 nil 时确认消息，否则消息保留在 pending 中等待重新认领
	HandleTemplateJob(ctx context.Context, streamID string, payload string) error
}

// TemplateStreamServer 模板测试任务消费服务器
type TemplateStreamServer struct {
	rdb       *redis.Client
	stream    string
	group     string
	consumer  string
	block     time.Duration
	count     int64
	claimIdle time.Duration
	handler   TemplateStreamHandler
	log       *log.Helper
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

var _ transport.Server = (*TemplateStreamServer)(nil)

// NewTemplateStreamServer 创建任务消费服务器
func NewTemplateStreamServer(rdb *redis.Client, logger log.Logger, handler TemplateStreamHandler) *TemplateStreamServer {
	host, _ := os.Hostname()
	return &TemplateStreamServer{
		rdb:      rdb,
		stream:   templateStream,
		group:    templateGroup,
		consumer: fmt.Sprintf("template-consumer-%s-%d", host, os.Getpid()),
		block:    2 * time.Second,
		// 单个任务可能运行数秒，每次只取一条
		count:     1,
		claimIdle: 5 * time.Minute,
		handler:   handler,
		log:       log.NewHelper(log.With(logger, "module", "server/template_stream")),
	}
}

func (s *TemplateStreamServer) Start(ctx context.Context) error {
	if s.handler == nil {
		return fmt.Errorf("template job handler is nil")
	}

	if err := s.ensureGroup(ctx); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.consumeLoop(runCtx)
	}()

	if s.claimIdle > 0 {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.reclaimLoop(runCtx)
		}()
	}

	s.log.Infof("template stream server started: stream=%s group=%s consumer=%s", s.stream, s.group, s.consumer)
	return nil
}

func (s *TemplateStreamServer) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-done:
		s.log.Info("template stream server stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ensureGroup 确保消费者组存在，MKSTREAM 会同时创建 Stream
func (s *TemplateStreamServer) ensureGroup(ctx context.Context) error {
	err := s.rdb.XGroupCreateMkStream(ctx, s.stream, s.group, "0").Err()
	if err != nil {
		if isBusyGroup(err) {
			s.log.Infof("consumer group already exists: stream=%s group=%s", s.stream, s.group)
			return nil
		}
		s.log.Errorf("failed to create consumer group: %v", err)
		return err
	}
	s.log.Infof("consumer group created: stream=%s group=%s", s.stream, s.group)
	return nil
}

func (s *TemplateStreamServer) consumeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := s.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    s.group,
			Consumer: s.consumer,
			Streams:  []string{s.stream, ">"},
			Count:    s.count,
			Block:    s.block,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			s.log.Errorf("XReadGroup error: %v", err)
			time.Sleep(200 * time.Millisecond)
			continue
		}

		for _, strm := range res {
			for _, msg := range strm.Messages {
				s.process(ctx, msg)
			}
		}
	}
}

// reclaimLoop 重新认领长时间未确认的任务（消费者崩溃或处理失败）
func (s *TemplateStreamServer) reclaimLoop(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	start := "0-0"
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		msgs, next, err := s.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   s.stream,
			Group:    s.group,
			Consumer: s.consumer,
			MinIdle:  s.claimIdle,
			Start:    start,
			Count:    s.count,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			s.log.Errorf("XAutoClaim error: %v", err)
			continue
		}

		start = next
		if len(msgs) == 0 {
			start = "0-0"
			continue
		}
		for _, msg := range msgs {
			s.process(ctx, msg)
		}
	}
}

func (s *TemplateStreamServer) process(ctx context.Context, msg redis.XMessage) {
	payload, ok := jobPayload(msg)
	if !ok {
		s.log.Warnf("missing payload field, ack and drop: msgID=%s values=%v", msg.ID, msg.Values)
		s.ack(ctx, msg.ID)
		return
	}
	if err := s.handler.HandleTemplateJob(ctx, msg.ID, payload); err != nil {
		s.log.Errorf("handle failed, keep pending: streamID=%s err=%v", msg.ID, err)
		return
	}
	s.ack(ctx, msg.ID)
}

// ack 在停止过程中也要完成，不跟随运行 ctx 取消
func (s *TemplateStreamServer) ack(ctx context.Context, id string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := s.rdb.XAck(ctx, s.stream, s.group, id).Result(); err != nil {
		s.log.Errorf("XAck failed: msgID=%s err=%v", id, err)
	}
}

func jobPayload(msg redis.XMessage) (string, bool) {
	v, ok := msg.Values[templatePayloadField]
	if !ok || v == nil {
		return "", false
	}
	payload := fmt.Sprint(v)
	return payload, payload != ""
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
