package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
)

func loadBootstrap(t *testing.T, yaml string) *Bootstrap {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	c := config.New(config.WithSource(file.NewSource(path)))
	defer c.Close()
	if err := c.Load(); err != nil {
		t.Fatal(err)
	}
	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		t.Fatal(err)
	}
	return &bc
}

func TestBootstrap_Scan(t *testing.T) {
	bc := loadBootstrap(t, `
server:
  http:
    addr: 0.0.0.0:8000
    timeout: 1s
data:
  redis:
    addr: 127.0.0.1:6379
    db: 2
    read_timeout: 0.2s
generator:
  max_draw: 4096
  seed_source: 42
template:
  size: 1024
  samples: 1000000
  alpha: 0.05
  consumer: true
`)
	if got := bc.GetServer().GetHttp().GetTimeout().AsDuration(); got != time.Second {
		t.Errorf("http timeout = %v", got)
	}
	if bc.GetServer().GetGrpc() != nil {
		t.Error("grpc should be nil")
	}
	redis := bc.GetData().GetRedis()
	if redis.GetAddr() != "127.0.0.1:6379" || redis.GetDb() != 2 || redis.GetReadTimeout().AsDuration() != 200*time.Millisecond {
		t.Errorf("redis = %v", redis)
	}
	if redis.GetWriteTimeout() != nil {
		t.Errorf("write timeout = %v, want unset", redis.GetWriteTimeout())
	}
	if bc.GetData().GetDatabase().GetSource() != "" || bc.GetData().GetRabbitmq().GetUrl() != "" {
		t.Error("unset sections should read as zero values")
	}
	if bc.GetGenerator().GetMaxDraw() != 4096 || bc.GetGenerator().GetSeedSource() != 42 {
		t.Errorf("generator = %v", bc.GetGenerator())
	}
	if tm := bc.GetTemplate(); tm.GetSize() != 1024 || tm.GetSamples() != 1000000 || tm.GetAlpha() != 0.05 || !tm.GetConsumer() {
		t.Errorf("template = %v", tm)
	}
}

func TestBootstrap_ShippedConfig(t *testing.T) {
	raw, err := os.ReadFile("../../configs/config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	bc := loadBootstrap(t, string(raw))
	if bc.GetServer().GetHttp().GetAddr() == "" || bc.GetServer().GetGrpc().GetAddr() == "" {
		t.Errorf("server = %v", bc.GetServer())
	}
	if bc.GetTemplate().GetSize() != 1024 || bc.GetTemplate().GetSamples() != 1000000 {
		t.Errorf("template = %v", bc.GetTemplate())
	}
}

func TestNilAccessors(t *testing.T) {
	var r *Data_Redis
	if r.GetPassword() != "" || r.GetDb() != 0 || r.GetReadTimeout() != nil || r.GetWriteTimeout().AsDuration() != 0 {
		t.Error("nil redis accessors should return zero values")
	}
	var g *Generator
	var tm *Template
	if g.GetSeedSource() != 0 || tm.GetConsumer() {
		t.Error("nil generator/template accessors should return zero values")
	}
}
