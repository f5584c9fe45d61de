package biz

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"etaus/internal/conf"
	"etaus/pkg/etaus"
)

// 抽样类型
const (
	DrawRaw        = "raw"
	DrawUniform    = "uniform"
	DrawFraction53 = "fraction53"
	DrawInt        = "int"
	DrawBits       = "bits"
	DrawBit        = "bit"
)

const (
	defaultMaxSessions = 1024
	defaultMaxDraw     = 1 << 16
)

// DrawRequest 一次抽样请求
type DrawRequest struct {
	Kind  string // raw/uniform/fraction53/int/bits/bit
	Param uint32 // int 的上限或 bits 的位数
	Count int    // 抽样个数
}

// Draw 抽样结果，整数类结果在 Uints，浮点类结果在 Floats
type Draw struct {
	SessionID string
	Kind      string
	Param     uint32
	Uints     []uint32
	Floats    []float64
}

// Session 生成器会话
// etaus.Generator 本身不加锁，会话用自己的互斥锁串行化访问。
type Session struct {
	ID        string
	Seed      etaus.Seed
	CreatedAt time.Time
	Draws     uint64 // 已抽取的值个数

	mu  sync.Mutex
	gen *etaus.Generator
}

// SessionInfo 会话信息快照
type SessionInfo struct {
	ID        string
	Seed      etaus.Seed
	CreatedAt time.Time
	Draws     uint64
	State     etaus.State
}

// GeneratorUsecase 生成器会话业务用例
// 参数校验都在这一层完成，etaus 的热路径不做任何检查。
type GeneratorUsecase struct {
	seeds       SeedSource
	maxSessions int
	maxDraw     int
	log         *log.Helper

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewGeneratorUsecase 创建生成器用例
func NewGeneratorUsecase(c *conf.Generator, seeds SeedSource, logger log.Logger) *GeneratorUsecase {
	uc := &GeneratorUsecase{
		seeds:       seeds,
		maxSessions: defaultMaxSessions,
		maxDraw:     defaultMaxDraw,
		log:         log.NewHelper(log.With(logger, "module", "biz/generator")),
		sessions:    make(map[string]*Session),
	}
	if c != nil {
		if c.MaxSessions > 0 {
			uc.maxSessions = int(c.MaxSessions)
		}
		if c.MaxDraw > 0 {
			uc.maxDraw = int(c.MaxDraw)
		}
	}
	return uc
}

// Create 创建会话并播种
func (uc *GeneratorUsecase) Create(ctx context.Context, spec SeedSpec) (*SessionInfo, error) {
	seed, err := spec.resolve(uc.seeds, false)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.NewString(),
		Seed:      seed,
		CreatedAt: time.Now(),
		gen:       etaus.New(seed),
	}

	uc.mu.Lock()
	if len(uc.sessions) >= uc.maxSessions {
		uc.mu.Unlock()
		return nil, ErrTooManySessions
	}
	uc.sessions[s.ID] = s
	uc.mu.Unlock()

	uc.log.Infof("session created: id=%s seed=%08x/%08x/%08x", s.ID, seed[0], seed[1], seed[2])
	return s.info(), nil
}

// Reseed 重新播种，状态与洗牌表全部重置
func (uc *GeneratorUsecase) Reseed(ctx context.Context, id string, spec SeedSpec) (*SessionInfo, error) {
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	seed, err := spec.resolve(uc.seeds, false)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.Seed = seed
	s.Draws = 0
	s.gen.Seed(seed)
	s.mu.Unlock()

	uc.log.Infof("session reseeded: id=%s seed=%08x/%08x/%08x", id, seed[0], seed[1], seed[2])
	return s.info(), nil
}

// Delete 删除会话
func (uc *GeneratorUsecase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(uc.sessions, id)
	uc.log.Infof("session deleted: id=%s", id)
	return nil
}

// Get 查询会话信息
func (uc *GeneratorUsecase) Get(ctx context.Context, id string) (*SessionInfo, error) {
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	return s.info(), nil
}

// Draw 在会话上抽样
func (uc *GeneratorUsecase) Draw(ctx context.Context, id string, req DrawRequest) (*Draw, error) {
	if err := uc.validateDraw(req); err != nil {
		return nil, err
	}
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}

	d := &Draw{SessionID: id, Kind: req.Kind, Param: req.Param}
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Kind {
	case DrawUniform, DrawFraction53:
		d.Floats = make([]float64, req.Count)
		next := s.gen.Uniform
		if req.Kind == DrawFraction53 {
			next = s.gen.Fraction53
		}
		for i := range d.Floats {
			d.Floats[i] = next()
		}
	default:
		d.Uints = make([]uint32, req.Count)
		for i := range d.Uints {
			switch req.Kind {
			case DrawRaw:
				d.Uints[i] = s.gen.Next()
			case DrawInt:
				d.Uints[i] = s.gen.Int(req.Param)
			case DrawBits:
				d.Uints[i] = s.gen.Bits(uint(req.Param))
			case DrawBit:
				d.Uints[i] = s.gen.Bit()
			}
		}
	}
	s.Draws += uint64(req.Count)
	return d, nil
}

// Table 复制会话的洗牌表
func (uc *GeneratorUsecase) Table(ctx context.Context, id string) ([]uint32, error) {
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	table := make([]uint32, etaus.TableSize)
	s.mu.Lock()
	s.gen.Table(table)
	s.mu.Unlock()
	return table, nil
}

// Dump 以文本形式输出会话状态与洗牌表
func (uc *GeneratorUsecase) Dump(ctx context.Context, id string, w io.Writer, withTable bool) error {
	s, err := uc.get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gen.WriteState(w); err != nil {
		return err
	}
	if !withTable {
		return nil
	}
	return s.gen.WriteTable(w)
}

func (uc *GeneratorUsecase) validateDraw(req DrawRequest) error {
	if req.Count < 1 || req.Count > uc.maxDraw {
		return errors.BadRequest(ErrInvalidDraw.Reason, fmt.Sprintf("count must be in [1, %d], got %d", uc.maxDraw, req.Count))
	}
	switch req.Kind {
	case DrawRaw, DrawUniform, DrawFraction53, DrawBit:
	case DrawInt:
		if req.Param == 0 {
			return errors.BadRequest(ErrInvalidDraw.Reason, "int limit must be greater than 0")
		}
	case DrawBits:
		if req.Param < 1 || req.Param > 31 {
			return errors.BadRequest(ErrInvalidDraw.Reason, fmt.Sprintf("bits must be in [1, 31], got %d", req.Param))
		}
	default:
		return errors.BadRequest(ErrInvalidDraw.Reason, fmt.Sprintf("unknown draw kind %q", req.Kind))
	}
	return nil
}

func (uc *GeneratorUsecase) get(id string) (*Session, error) {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (s *Session) info() *SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &SessionInfo{
		ID:        s.ID,
		Seed:      s.Seed,
		CreatedAt: s.CreatedAt,
		Draws:     s.Draws,
		State:     s.gen.State(),
	}
}
