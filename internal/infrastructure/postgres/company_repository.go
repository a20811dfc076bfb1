package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, name, plan, max_users, max_assets, is_active, ruc, cedula, address, phone, contact_email, created_at, updated_at`

func scanCompany(row interface{ Scan(...any) error }) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Plan, &c.MaxUsers, &c.MaxAssets, &c.IsActive,
		&c.RUC, &c.Cedula, &c.Address, &c.Phone, &c.ContactEmail,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa. RUC o cédula duplicados se traducen al
// error de dominio.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Plan, c.MaxUsers, c.MaxAssets, c.IsActive,
		c.RUC, c.Cedula, c.Address, c.Phone, c.ContactEmail,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxIDAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, plan, max_users, max_assets, is_active,
		       COALESCE(ruc, ''), COALESCE(cedula, ''), address, phone, contact_email,
		       created_at, updated_at
		FROM companies WHERE id = $1`
	c, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByTaxID busca por RUC o cédula indistintamente (ambos únicos).
func (r *CompanyRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error) {
	query := `
		SELECT id, name, plan, max_users, max_assets, is_active,
		       COALESCE(ruc, ''), COALESCE(cedula, ''), address, phone, contact_email,
		       created_at, updated_at
		FROM companies WHERE ruc = $1 OR cedula = $1`
	c, err := scanCompany(r.db.QueryRow(ctx, query, taxID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by tax id: %w", err)
	}
	return c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, plan = $3, max_users = $4, max_assets = $5, is_active = $6,
		    ruc = NULLIF($7, ''), cedula = NULLIF($8, ''), address = $9, phone = $10,
		    contact_email = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Plan, c.MaxUsers, c.MaxAssets, c.IsActive,
		c.RUC, c.Cedula, c.Address, c.Phone, c.ContactEmail, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxIDAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación (solo super_admin la consume).
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, plan, max_users, max_assets, is_active,
		       COALESCE(ruc, ''), COALESCE(cedula, ''), address, phone, contact_email,
		       created_at, updated_at
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID. El schema cascadea todo lo que cuelga de ella.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
