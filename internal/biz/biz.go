package biz

import (
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewGeneratorUsecase, NewTemplateUsecase, NewGoldenUsecase)

// 错误定义
var (
	ErrSessionNotFound  = errors.NotFound("SESSION_NOT_FOUND", "generator session not found")
	ErrTooManySessions  = errors.New(429, "TOO_MANY_SESSIONS", "too many generator sessions")
	ErrInvalidDraw      = errors.BadRequest("INVALID_DRAW", "invalid draw request")
	ErrSeedDegenerate   = errors.BadRequest("SEED_DEGENERATE", "seed collapses a tausworthe component (need s1>1, s2>7, s3>15)")
	ErrInvalidTemplate  = errors.BadRequest("INVALID_TEMPLATE", "invalid template test parameters")
	ErrRunNotFound      = errors.NotFound("RUN_NOT_FOUND", "template run not found")
	ErrGoldenNotFound   = errors.NotFound("GOLDEN_NOT_FOUND", "golden vector not recorded")
	ErrInvalidGoldenLen = errors.BadRequest("INVALID_GOLDEN_LENGTH", "golden vector length out of range")
)
