package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que SupportRepo implementa repository.SupportRepository.
var _ repository.SupportRepository = (*SupportRepo)(nil)

// SupportRepo implementación del puerto SupportRepository sobre PostgreSQL.
// admin_user_id es PK: a lo sumo una sesión por admin.
type SupportRepo struct {
	db Querier
}

// NewSupportRepository construye el adaptador de sesiones de soporte.
func NewSupportRepository(db Querier) *SupportRepo {
	return &SupportRepo{db: db}
}

// Upsert crea o reemplaza la sesión del admin.
func (r *SupportRepo) Upsert(ctx context.Context, s *entity.SupportSession) error {
	query := `
		INSERT INTO support_sessions (admin_user_id, company_id, granted_by, started_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (admin_user_id)
		DO UPDATE SET company_id = EXCLUDED.company_id, granted_by = EXCLUDED.granted_by, started_at = EXCLUDED.started_at`
	_, err := r.db.Exec(ctx, query, s.AdminUserID, s.CompanyID, s.GrantedBy, s.StartedAt)
	if err != nil {
		return fmt.Errorf("upsert support session: %w", err)
	}
	return nil
}

// Get obtiene la sesión del admin. (nil, nil) si no tiene.
func (r *SupportRepo) Get(ctx context.Context, adminUserID string) (*entity.SupportSession, error) {
	query := `
		SELECT admin_user_id, company_id, granted_by, started_at
		FROM support_sessions WHERE admin_user_id = $1`
	var s entity.SupportSession
	err := r.db.QueryRow(ctx, query, adminUserID).Scan(&s.AdminUserID, &s.CompanyID, &s.GrantedBy, &s.StartedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get support session: %w", err)
	}
	return &s, nil
}

// Delete cierra la sesión del admin.
func (r *SupportRepo) Delete(ctx context.Context, adminUserID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM support_sessions WHERE admin_user_id = $1`, adminUserID)
	if err != nil {
		return fmt.Errorf("delete support session: %w", err)
	}
	return nil
}
