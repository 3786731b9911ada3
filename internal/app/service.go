package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"osa-filters/internal/deprecate"
	"osa-filters/internal/filters"
)

type Service struct {
	Registry *filters.Registry
}

func NewService(ctx context.Context) (Service, error) {
	registry, err := filters.New(ctx, deprecate.NewChecker(log.Logger))
	if err != nil {
		return Service{}, err
	}
	return Service{Registry: registry}, nil
}
