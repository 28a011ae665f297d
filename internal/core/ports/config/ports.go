package configports

import (
	"context"

	"predeploy.dev/cli/internal/core/domain"
)

// Loader produces one configuration layer. Fields left at their zero value
// do not override lower layers.
type Loader interface {
	Load(ctx context.Context) (domain.Config, error)
	Name() string
}

type Validator interface {
	Validate(cfg domain.Config) error
}
