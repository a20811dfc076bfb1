package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que ActivityRepo implementa repository.ActivityRepository.
var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// La tabla es append-only: no hay UPDATE ni DELETE.
type ActivityRepo struct {
	db Querier
}

// NewActivityRepository construye el adaptador de la bitácora.
func NewActivityRepository(db Querier) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Append inserta una entrada de bitácora.
func (r *ActivityRepo) Append(ctx context.Context, e *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, company_id, user_id, action, entity_type, entity_id, entity_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.CompanyID, e.UserID, e.Action, e.EntityType, e.EntityID, e.EntityName, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas entradas de la empresa, más recientes primero.
func (r *ActivityRepo) ListRecent(ctx context.Context, companyID string, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, company_id, user_id, action, entity_type, entity_id, entity_name, created_at
		FROM activity_logs WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var list []*entity.ActivityLog
	for rows.Next() {
		var e entity.ActivityLog
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.EntityName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
