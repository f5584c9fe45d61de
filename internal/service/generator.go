package service

import (
	"bytes"
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"google.golang.org/genproto/googleapis/api/httpbody"

	v1 "etaus/api/etaus/v1"
	"etaus/internal/biz"
	"etaus/pkg/etaus"
)

// GeneratorService 生成器服务，同时提供 HTTP 与 gRPC 接口
type GeneratorService struct {
	v1.UnimplementedGeneratorServer

	gen    *biz.GeneratorUsecase
	tmpl   *biz.TemplateUsecase
	golden *biz.GoldenUsecase
	log    *log.Helper
}

// NewGeneratorService 创建生成器服务
func NewGeneratorService(
	gen *biz.GeneratorUsecase,
	tmpl *biz.TemplateUsecase,
	golden *biz.GoldenUsecase,
	logger log.Logger,
) *GeneratorService {
	return &GeneratorService{
		gen:    gen,
		tmpl:   tmpl,
		golden: golden,
		log:    log.NewHelper(log.With(logger, "module", "service/generator")),
	}
}

// CreateSession 创建会话
func (s *GeneratorService) CreateSession(ctx context.Context, req *v1.CreateSessionRequest) (*v1.SessionReply, error) {
	spec, err := toSeedSpec(req.Seed, req.Phrase)
	if err != nil {
		return nil, err
	}
	info, err := s.gen.Create(ctx, spec)
	if err != nil {
		s.log.Errorf("create session failed: %v", err)
		return nil, err
	}
	return toSessionReply(info, false), nil
}

// DeleteSession 删除会话
func (s *GeneratorService) DeleteSession(ctx context.Context, req *v1.SessionRequest) (*v1.DeleteSessionReply, error) {
	if err := s.gen.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return &v1.DeleteSessionReply{}, nil
}

// ReseedSession 重新播种
func (s *GeneratorService) ReseedSession(ctx context.Context, req *v1.ReseedSessionRequest) (*v1.SessionReply, error) {
	spec, err := toSeedSpec(req.Seed, req.Phrase)
	if err != nil {
		return nil, err
	}
	info, err := s.gen.Reseed(ctx, req.Id, spec)
	if err != nil {
		s.log.Errorf("reseed session failed: id=%s err=%v", req.Id, err)
		return nil, err
	}
	return toSessionReply(info, false), nil
}

// DrawSession 抽样
func (s *GeneratorService) DrawSession(ctx context.Context, req *v1.DrawRequest) (*v1.DrawReply, error) {
	d, err := s.gen.Draw(ctx, req.Id, biz.DrawRequest{
		Kind:  req.Kind,
		Param: req.Param,
		Count: int(req.Count),
	})
	if err != nil {
		return nil, err
	}
	return &v1.DrawReply{
		SessionId: d.SessionID,
		Kind:      d.Kind,
		Param:     d.Param,
		Uints:     d.Uints,
		Floats:    d.Floats,
	}, nil
}

// GetSessionState 会话信息与生成器状态
func (s *GeneratorService) GetSessionState(ctx context.Context, req *v1.SessionRequest) (*v1.SessionReply, error) {
	info, err := s.gen.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return toSessionReply(info, true), nil
}

// DumpTable 以 text/plain 输出洗牌表，state 为 true 时先输出生成器状态
func (s *GeneratorService) DumpTable(ctx context.Context, req *v1.TableRequest) (*httpbody.HttpBody, error) {
	var buf bytes.Buffer
	if req.State {
		if err := s.gen.Dump(ctx, req.Id, &buf, true); err != nil {
			return nil, err
		}
	} else {
		table, err := s.gen.Table(ctx, req.Id)
		if err != nil {
			return nil, err
		}
		if err := etaus.WriteTable(&buf, table); err != nil {
			return nil, err
		}
	}
	return &httpbody.HttpBody{
		ContentType: "text/plain; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func toSeedSpec(words []uint32, phrase string) (biz.SeedSpec, error) {
	seed, err := toSeed(words)
	if err != nil {
		return biz.SeedSpec{}, err
	}
	return biz.SeedSpec{Seed: seed, Phrase: phrase}, nil
}

func toSessionReply(info *biz.SessionInfo, withState bool) *v1.SessionReply {
	reply := &v1.SessionReply{
		Id:        info.ID,
		Seed:      fromSeed(info.Seed),
		CreatedAt: info.CreatedAt.Format(time.RFC3339),
		Draws:     info.Draws,
	}
	if withState {
		st := info.State
		reply.State = &v1.GeneratorState{
			S1:    st.S1,
			S2:    st.S2,
			S3:    st.S3,
			Out:   st.Out,
			Prev:  st.Prev,
			Pprev: st.PPrev,
			Ofst:  st.Ofst,
		}
	}
	return reply
}
