package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Eval runs a named filter on already-parsed arguments and returns its
// value unchanged.
func (s Service) Eval(ctx context.Context, req EvalRequest) (EvalResult, error) {
	fn, err := s.Registry.Lookup(req.Filter)
	if err != nil {
		return EvalResult{}, err
	}
	value, err := fn(req.Args)
	if err != nil {
		return EvalResult{}, err
	}
	log.Ctx(ctx).Debug().Str("filter", req.Filter).Int("args", len(req.Args)).Msg("filter evaluated")
	return EvalResult{Value: value}, nil
}
