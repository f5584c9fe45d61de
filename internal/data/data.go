package data

import (
	"errors"

	"etaus/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewTemplateRepo,
	NewGoldenRepo,
	NewTemplateJobQueue,
	NewMQPublisher,
	NewSeedSource,
)

// Data .
type Data struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewData .
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(log.With(logger, "module", "data"))
	if c == nil || c.GetDatabase() == nil || c.GetDatabase().GetSource() == "" {
		return nil, nil, errors.New("database configuration is missing")
	}

	// 初始化数据库
	db, err := gorm.Open(postgres.Open(c.GetDatabase().GetSource()), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(&templateRunPO{}); err != nil {
		return nil, nil, err
	}

	// 初始化 Redis
	var rdb *redis.Client
	if c.GetRedis().GetAddr() != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         c.GetRedis().GetAddr(),
			Password:     c.GetRedis().GetPassword(),
			DB:           int(c.GetRedis().GetDb()),
			ReadTimeout:  c.GetRedis().GetReadTimeout().AsDuration(),
			WriteTimeout: c.GetRedis().GetWriteTimeout().AsDuration(),
		})
		helper.Info("redis client initialized")
	} else {
		helper.Warn("redis configuration is missing, golden vectors and job queue disabled")
	}

	cleanup := func() {
		closeAll(helper, db, rdb)
	}

	return &Data{
		db:    db,
		redis: rdb,
	}, cleanup, nil
}

// closeAll 依次关闭数据库与 Redis，前者失败不影响后者
func closeAll(helper *log.Helper, db *gorm.DB, rdb *redis.Client) {
	if sqlDB, err := db.DB(); err != nil {
		helper.Errorf("failed to obtain sql.DB from gorm: %v", err)
	} else if err := sqlDB.Close(); err != nil {
		helper.Errorf("failed to close database: %v", err)
	} else {
		helper.Info("database connection closed")
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			helper.Errorf("failed to close redis: %v", err)
			return
		}
		helper.Info("redis connection closed")
	}
}

var errRedisDisabled = errors.New("redis client is not initialized")
