package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que LicenseRepo implementa repository.LicenseRepository.
var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL.
type LicenseRepo struct {
	db Querier
}

// NewLicenseRepository construye el adaptador de persistencia para licencias.
func NewLicenseRepository(db Querier) *LicenseRepo {
	return &LicenseRepo{db: db}
}

const licenseSelect = `
	SELECT id, company_id, asset_id, name, vendor, license_type, max_users, current_users,
	       purchase_date, expiry_date, monthly_cost, annual_cost, status, created_at, updated_at
	FROM licenses`

func scanLicense(row pgx.Row) (*entity.License, error) {
	var l entity.License
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.AssetID, &l.Name, &l.Vendor, &l.LicenseType,
		&l.MaxUsers, &l.CurrentUsers, &l.PurchaseDate, &l.ExpiryDate,
		&l.MonthlyCost, &l.AnnualCost, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste una nueva licencia.
func (r *LicenseRepo) Create(ctx context.Context, l *entity.License) error {
	query := `
		INSERT INTO licenses (id, company_id, asset_id, name, vendor, license_type, max_users,
			current_users, purchase_date, expiry_date, monthly_cost, annual_cost, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.CompanyID, l.AssetID, l.Name, l.Vendor, l.LicenseType, l.MaxUsers,
		l.CurrentUsers, l.PurchaseDate, l.ExpiryDate, l.MonthlyCost, l.AnnualCost, l.Status,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtiene una licencia de la empresa. (nil, nil) si no existe en su scope.
func (r *LicenseRepo) GetByID(ctx context.Context, companyID, id string) (*entity.License, error) {
	l, err := scanLicense(r.db.QueryRow(ctx, licenseSelect+` WHERE company_id = $1 AND id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return l, nil
}

// ListByCompany lista las licencias de la empresa con paginación.
func (r *LicenseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.License, error) {
	query := licenseSelect + ` WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// CountByCompany cuenta las licencias de la empresa (límite de plan).
func (r *LicenseRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM licenses WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count licenses: %w", err)
	}
	return n, nil
}

// Update actualiza una licencia existente.
func (r *LicenseRepo) Update(ctx context.Context, l *entity.License) error {
	query := `
		UPDATE licenses
		SET asset_id = $3, name = $4, vendor = $5, license_type = $6, max_users = $7,
		    current_users = $8, purchase_date = $9, expiry_date = $10, monthly_cost = $11,
		    annual_cost = $12, status = $13, updated_at = $14
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query,
		l.CompanyID, l.ID, l.AssetID, l.Name, l.Vendor, l.LicenseType, l.MaxUsers,
		l.CurrentUsers, l.PurchaseDate, l.ExpiryDate, l.MonthlyCost, l.AnnualCost, l.Status,
		l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

// Delete elimina una licencia de la empresa.
func (r *LicenseRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}
