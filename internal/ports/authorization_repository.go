package ports

import (
	"context"

	"github.com/bnema/wave-portal-cli/internal/domain"
)

type AuthorizationRepository interface {
	List(ctx context.Context) ([]domain.Authorization, error)
	Save(ctx context.Context, authorization domain.Authorization) error
}
