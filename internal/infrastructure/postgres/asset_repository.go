package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que AssetRepo implementa repository.AssetRepository.
var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL.
// Toda lectura por ID filtra además por company_id.
type AssetRepo struct {
	db Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos.
func NewAssetRepository(db Querier) *AssetRepo {
	return &AssetRepo{db: db}
}

const assetSelect = `
	SELECT id, company_id, name, type, status, monthly_cost, annual_cost,
	       COALESCE(application_type, ''), domain_cost, domain_expiry, ssl_cost, ssl_expiry,
	       hosting_cost, hosting_expiry, server_cost, server_expiry,
	       assigned_technician_id, created_at, updated_at
	FROM assets`

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.Type, &a.Status, &a.MonthlyCost, &a.AnnualCost,
		&a.ApplicationType, &a.DomainCost, &a.DomainExpiry, &a.SSLCost, &a.SSLExpiry,
		&a.HostingCost, &a.HostingExpiry, &a.ServerCost, &a.ServerExpiry,
		&a.AssignedTechnicianID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un nuevo activo.
func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	query := `
		INSERT INTO assets (id, company_id, name, type, status, monthly_cost, annual_cost,
			application_type, domain_cost, domain_expiry, ssl_cost, ssl_expiry,
			hosting_cost, hosting_expiry, server_cost, server_expiry,
			assigned_technician_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.CompanyID, a.Name, a.Type, a.Status, a.MonthlyCost, a.AnnualCost,
		string(a.ApplicationType), a.DomainCost, a.DomainExpiry, a.SSLCost, a.SSLExpiry,
		a.HostingCost, a.HostingExpiry, a.ServerCost, a.ServerExpiry,
		a.AssignedTechnicianID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo de la empresa. (nil, nil) si no existe en su scope.
func (r *AssetRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Asset, error) {
	a, err := scanAsset(r.db.QueryRow(ctx, assetSelect+` WHERE company_id = $1 AND id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// ListByCompany lista los activos de la empresa con paginación.
func (r *AssetRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Asset, error) {
	query := assetSelect + ` WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryAssets(ctx, query, companyID, limit, offset)
}

// ListApplications devuelve los activos type=application (insumo del motor de alertas).
func (r *AssetRepo) ListApplications(ctx context.Context, companyID string) ([]*entity.Asset, error) {
	query := assetSelect + ` WHERE company_id = $1 AND type = 'application' ORDER BY created_at`
	return r.queryAssets(ctx, query, companyID)
}

func (r *AssetRepo) queryAssets(ctx context.Context, query string, args ...any) ([]*entity.Asset, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CountByCompany cuenta todos los activos de la empresa (límite de plan).
func (r *AssetRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM assets WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return n, nil
}

// CountApplications cuenta los activos type=application (límite de plan).
func (r *AssetRepo) CountApplications(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM assets WHERE company_id = $1 AND type = 'application'`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// Update actualiza un activo existente.
func (r *AssetRepo) Update(ctx context.Context, a *entity.Asset) error {
	query := `
		UPDATE assets
		SET name = $3, type = $4, status = $5, monthly_cost = $6, annual_cost = $7,
		    application_type = NULLIF($8, ''), domain_cost = $9, domain_expiry = $10,
		    ssl_cost = $11, ssl_expiry = $12, hosting_cost = $13, hosting_expiry = $14,
		    server_cost = $15, server_expiry = $16, assigned_technician_id = $17, updated_at = $18
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query,
		a.CompanyID, a.ID, a.Name, a.Type, a.Status, a.MonthlyCost, a.AnnualCost,
		string(a.ApplicationType), a.DomainCost, a.DomainExpiry, a.SSLCost, a.SSLExpiry,
		a.HostingCost, a.HostingExpiry, a.ServerCost, a.ServerExpiry,
		a.AssignedTechnicianID, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// Delete elimina un activo de la empresa. El schema cascadea sus mantenimientos
// y anula el asset_id de sus licencias.
func (r *AssetRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM assets WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
