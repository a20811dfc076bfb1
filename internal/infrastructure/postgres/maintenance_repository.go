package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que MaintenanceRepo implementa repository.MaintenanceRepository.
var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL.
type MaintenanceRepo struct {
	db Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para mantenimientos.
func NewMaintenanceRepository(db Querier) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

const maintenanceSelect = `
	SELECT id, asset_id, company_id, type, cost, scheduled_date, completed_date, status,
	       created_at, updated_at
	FROM maintenance_records`

func scanMaintenance(row pgx.Row) (*entity.MaintenanceRecord, error) {
	var m entity.MaintenanceRecord
	err := row.Scan(
		&m.ID, &m.AssetID, &m.CompanyID, &m.Type, &m.Cost, &m.ScheduledDate,
		&m.CompletedDate, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un nuevo registro de mantenimiento.
func (r *MaintenanceRepo) Create(ctx context.Context, m *entity.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_records (id, asset_id, company_id, type, cost, scheduled_date,
			completed_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.AssetID, m.CompanyID, m.Type, m.Cost, m.ScheduledDate,
		m.CompletedDate, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de la empresa. (nil, nil) si no existe en su scope.
func (r *MaintenanceRepo) GetByID(ctx context.Context, companyID, id string) (*entity.MaintenanceRecord, error) {
	m, err := scanMaintenance(r.db.QueryRow(ctx, maintenanceSelect+` WHERE company_id = $1 AND id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return m, nil
}

// ListByCompany lista los mantenimientos de la empresa con paginación.
func (r *MaintenanceRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.MaintenanceRecord, error) {
	query := maintenanceSelect + ` WHERE company_id = $1 ORDER BY scheduled_date DESC LIMIT $2 OFFSET $3`
	return r.queryRecords(ctx, query, companyID, limit, offset)
}

// ListByAsset historial de mantenimiento de un activo.
func (r *MaintenanceRepo) ListByAsset(ctx context.Context, companyID, assetID string) ([]*entity.MaintenanceRecord, error) {
	query := maintenanceSelect + ` WHERE company_id = $1 AND asset_id = $2 ORDER BY scheduled_date DESC`
	return r.queryRecords(ctx, query, companyID, assetID)
}

func (r *MaintenanceRepo) queryRecords(ctx context.Context, query string, args ...any) ([]*entity.MaintenanceRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	defer rows.Close()

	var list []*entity.MaintenanceRecord
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update actualiza un registro existente.
func (r *MaintenanceRepo) Update(ctx context.Context, m *entity.MaintenanceRecord) error {
	query := `
		UPDATE maintenance_records
		SET type = $3, cost = $4, scheduled_date = $5, completed_date = $6, status = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query,
		m.CompanyID, m.ID, m.Type, m.Cost, m.ScheduledDate, m.CompletedDate, m.Status, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return nil
}

// Delete elimina un registro de la empresa.
func (r *MaintenanceRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM maintenance_records WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}
	return nil
}
