package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que ContractRepo implementa repository.ContractRepository.
var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	db Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(db Querier) *ContractRepo {
	return &ContractRepo{db: db}
}

const contractSelect = `
	SELECT id, company_id, name, vendor, contract_type, start_date, end_date,
	       monthly_cost, annual_cost, status, auto_renewal, created_at, updated_at
	FROM contracts`

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Vendor, &c.ContractType, &c.StartDate, &c.EndDate,
		&c.MonthlyCost, &c.AnnualCost, &c.Status, &c.AutoRenewal, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, company_id, name, vendor, contract_type, start_date, end_date,
			monthly_cost, annual_cost, status, auto_renewal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.Vendor, c.ContractType, c.StartDate, c.EndDate,
		c.MonthlyCost, c.AnnualCost, c.Status, c.AutoRenewal, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato de la empresa. (nil, nil) si no existe en su scope.
func (r *ContractRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Contract, error) {
	c, err := scanContract(r.db.QueryRow(ctx, contractSelect+` WHERE company_id = $1 AND id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// ListByCompany lista los contratos de la empresa con paginación.
func (r *ContractRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Contract, error) {
	query := contractSelect + ` WHERE company_id = $1 ORDER BY end_date LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los contratos de la empresa (límite de plan).
func (r *ContractRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contracts WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count contracts: %w", err)
	}
	return n, nil
}

// Update actualiza un contrato existente.
func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) error {
	query := `
		UPDATE contracts
		SET name = $3, vendor = $4, contract_type = $5, start_date = $6, end_date = $7,
		    monthly_cost = $8, annual_cost = $9, status = $10, auto_renewal = $11, updated_at = $12
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query,
		c.CompanyID, c.ID, c.Name, c.Vendor, c.ContractType, c.StartDate, c.EndDate,
		c.MonthlyCost, c.AnnualCost, c.Status, c.AutoRenewal, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// Delete elimina un contrato de la empresa.
func (r *ContractRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}
