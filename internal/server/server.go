package server

import (
	"etaus/internal/conf"
	"etaus/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/wire"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(
	NewGRPCServer,
	NewHTTPServer,
	NewRedisServer,
	NewTemplateStreamServers,
)

// NewTemplateStreamServers 按配置创建异步任务消费者
func NewTemplateStreamServers(
	c *conf.Template,
	rs *RedisServer,
	handler *service.TemplateJobService,
	logger log.Logger,
) []transport.Server {
	helper := log.NewHelper(log.With(logger, "module", "server"))

	if !c.GetConsumer() {
		helper.Info("template consumer disabled")
		return nil
	}
	if rs == nil || rs.Client() == nil {
		helper.Warn("redis not available, skip template stream server")
		return nil
	}
	return []transport.Server{NewTemplateStreamServer(rs.Client(), logger, handler)}
}
