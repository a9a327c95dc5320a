package repository

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// SchoolRepository manages append-only partner school reference data.
type SchoolRepository interface {
	Append(ctx context.Context, school model.School) error
	List(ctx context.Context) ([]model.School, error)
}
