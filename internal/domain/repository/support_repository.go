package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// SupportRepository puerto de las sesiones de soporte (override de scope de
// super_admin). Una fila por admin como máximo.
type SupportRepository interface {
	// Upsert crea o reemplaza la sesión del admin.
	Upsert(ctx context.Context, s *entity.SupportSession) error
	Get(ctx context.Context, adminUserID string) (*entity.SupportSession, error)
	Delete(ctx context.Context, adminUserID string) error
}
