package service

import (
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/wire"

	v1 "etaus/api/etaus/v1"
	"etaus/pkg/etaus"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewGeneratorService, NewTemplateJobService)

var errInvalidSeed = errors.BadRequest("INVALID_SEED", "seed must have exactly 3 words")

// toSeed 请求中的种子必须恰好三个分量
func toSeed(words []uint32) (*etaus.Seed, error) {
	if len(words) == 0 {
		return nil, nil
	}
	if len(words) != 3 {
		return nil, errInvalidSeed
	}
	seed := etaus.Seed{words[0], words[1], words[2]}
	return &seed, nil
}

func fromSeed(seed etaus.Seed) []uint32 {
	return []uint32{seed[0], seed[1], seed[2]}
}

var _ v1.GeneratorServer = (*GeneratorService)(nil)
var _ v1.GeneratorHTTPServer = (*GeneratorService)(nil)
