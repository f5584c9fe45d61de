package server

import (
	nethttp "net/http"

	kjson "github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"google.golang.org/genproto/googleapis/api/httpbody"

	v1 "etaus/api/etaus/v1"
	"etaus/internal/conf"
	"etaus/internal/service"
)

func init() {
	// 响应字段沿用 proto 中的 snake_case 名称
	kjson.MarshalOptions.UseProtoNames = true
}

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, generator *service.GeneratorService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
		http.ResponseEncoder(encodeResponse),
	}
	if hc := c.GetHttp(); hc != nil {
		if hc.Network != "" {
			opts = append(opts, http.Network(hc.Network))
		}
		if hc.Addr != "" {
			opts = append(opts, http.Address(hc.Addr))
		}
		if hc.Timeout != nil {
			opts = append(opts, http.Timeout(hc.Timeout.AsDuration()))
		}
	}
	srv := http.NewServer(opts...)
	v1.RegisterGeneratorHTTPServer(srv, generator)
	return srv
}

// encodeResponse HttpBody 按原样输出，其余交给默认编码器
func encodeResponse(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, ok := v.(*httpbody.HttpBody)
	if !ok {
		return http.DefaultResponseEncoder(w, r, v)
	}
	if body.GetContentType() != "" {
		w.Header().Set("Content-Type", body.GetContentType())
	}
	w.WriteHeader(nethttp.StatusOK)
	_, err := w.Write(body.GetData())
	return err
}
