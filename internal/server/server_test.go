package server

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"

	"etaus/internal/conf"
)

var testLogger = log.NewStdLogger(io.Discard)

func TestJobPayload(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]interface{}
		want   string
		ok     bool
	}{
		{"payload", map[string]interface{}{"payload": `{"size":8}`}, `{"size":8}`, true},
		{"missing", map[string]interface{}{"uid": "x"}, "", false},
		{"nil", map[string]interface{}{"payload": nil}, "", false},
		{"empty", map[string]interface{}{"payload": ""}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := jobPayload(redis.XMessage{ID: "1-0", Values: tt.values})
			if got != tt.want || ok != tt.ok {
				t.Errorf("jobPayload() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsBusyGroup(t *testing.T) {
	if !isBusyGroup(errors.New("BUSYGROUP Consumer Group name already exists")) {
		t.Error("BUSYGROUP not detected")
	}
	if isBusyGroup(errors.New("NOGROUP")) || isBusyGroup(nil) {
		t.Error("false positive")
	}
}

type nopHandler struct{}

func (nopHandler) HandleTemplateJob(context.Context, string, string) error { return nil }

func TestTemplateStreamServer_StopBeforeStart(t *testing.T) {
	s := NewTemplateStreamServer(nil, testLogger, nopHandler{})
	if s.stream != "stream:template" || s.count != 1 {
		t.Errorf("server = %+v", s)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Error(err)
	}
}

func TestNewTemplateStreamServers(t *testing.T) {
	if got := NewTemplateStreamServers(&conf.Template{Consumer: false}, nil, nil, testLogger); got != nil {
		t.Errorf("disabled consumer created %d servers", len(got))
	}
	if got := NewTemplateStreamServers(&conf.Template{Consumer: true}, nil, nil, testLogger); got != nil {
		t.Errorf("consumer without redis created %d servers", len(got))
	}
	rs0, cleanup := NewRedisServer(&conf.Data{}, testLogger)
	if rs0 != nil {
		t.Error("redis server created without configuration")
	}
	cleanup()
	var rs *RedisServer
	if rs.Client() != nil || rs.Start(context.Background()) != nil || rs.Stop(context.Background()) != nil {
		t.Error("nil RedisServer must be inert")
	}
}

func TestRedisServer_StopKeepsClient(t *testing.T) {
	mr := miniredis.RunT(t)
	rs := &RedisServer{
		client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		log:    log.NewHelper(testLogger),
	}
	ctx := context.Background()

	if err := rs.Stop(ctx); err != nil {
		t.Fatal(err)
	}
	if err := rs.Client().Ping(ctx).Err(); err != nil {
		t.Fatalf("client unusable after Stop: %v", err)
	}

	if err := rs.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rs.Client().Ping(ctx).Err(); !errors.Is(err, redis.ErrClosed) {
		t.Errorf("Ping after Close = %v, want %v", err, redis.ErrClosed)
	}
}

type chanHandler struct {
	got chan string
	err error
}

func (h chanHandler) HandleTemplateJob(_ context.Context, _ string, payload string) error {
	h.got <- payload
	return h.err
}

func pendingCount(t *testing.T, rdb *redis.Client) int64 {
	t.Helper()
	p, err := rdb.XPending(context.Background(), templateStream, templateGroup).Result()
	if err != nil {
		t.Fatalf("XPending: %v", err)
	}
	return p.Count
}

func TestTemplateStreamServer_ConsumeAndAck(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantPending int64
	}{
		{"handled", nil, 0},
		{"failed stays pending", errors.New("db down"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr := miniredis.RunT(t)
			rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			defer rdb.Close()
			ctx := context.Background()

			h := chanHandler{got: make(chan string, 1), err: tt.err}
			s := NewTemplateStreamServer(rdb, testLogger, h)
			s.block = 50 * time.Millisecond
			s.claimIdle = 0
			if err := s.Start(ctx); err != nil {
				t.Fatal(err)
			}
			// 重复创建消费者组不报错
			if err := s.ensureGroup(ctx); err != nil {
				t.Fatal(err)
			}

			if err := rdb.XAdd(ctx, &redis.XAddArgs{
				Stream: templateStream,
				Values: map[string]interface{}{templatePayloadField: `{"size":8}`},
			}).Err(); err != nil {
				t.Fatal(err)
			}

			select {
			case payload := <-h.got:
				if payload != `{"size":8}` {
					t.Errorf("payload = %q", payload)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("job not consumed")
			}

			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := s.Stop(stopCtx); err != nil {
				t.Fatal(err)
			}
			if got := pendingCount(t, rdb); got != tt.wantPending {
				t.Errorf("pending = %d, want %d", got, tt.wantPending)
			}
		})
	}
}
