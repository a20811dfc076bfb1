package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ActivityRepository puerto de la bitácora de auditoría. Append-only.
type ActivityRepository interface {
	Append(ctx context.Context, e *entity.ActivityLog) error
	ListRecent(ctx context.Context, companyID string, limit int) ([]*entity.ActivityLog, error)
}
