package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que SummaryRepo implementa repository.SummaryRepository.
var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas read-only de agregación para el dashboard. Los SUM van
// con COALESCE para que una empresa sin datos sume 0, nunca null.
type SummaryRepo struct {
	db Querier
}

// NewSummaryRepository construye el adaptador de agregación.
func NewSummaryRepository(db Querier) *SummaryRepo {
	return &SummaryRepo{db: db}
}

func (r *SummaryRepo) costSums(ctx context.Context, table, companyID string) (repository.CostSums, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(SUM(monthly_cost), 0), COALESCE(SUM(annual_cost), 0) FROM %s WHERE company_id = $1`,
		table,
	)
	var s repository.CostSums
	if err := r.db.QueryRow(ctx, query, companyID).Scan(&s.Monthly, &s.Annual); err != nil {
		return repository.CostSums{}, fmt.Errorf("sum %s: %w", table, err)
	}
	return s, nil
}

// AssetCostSums sumatorias mensual y anual de TODOS los activos.
func (r *SummaryRepo) AssetCostSums(ctx context.Context, companyID string) (repository.CostSums, error) {
	return r.costSums(ctx, "assets", companyID)
}

// LicenseCostSums sumatorias mensual y anual de las licencias.
func (r *SummaryRepo) LicenseCostSums(ctx context.Context, companyID string) (repository.CostSums, error) {
	return r.costSums(ctx, "licenses", companyID)
}

// ContractCostSums sumatorias mensual y anual de los contratos.
func (r *SummaryRepo) ContractCostSums(ctx context.Context, companyID string) (repository.CostSums, error) {
	return r.costSums(ctx, "contracts", companyID)
}

// MaintenanceCostTotal total histórico de costo de mantenimiento (sin ventana
// temporal; el agregador lo divide entre 12).
func (r *SummaryRepo) MaintenanceCostTotal(ctx context.Context, companyID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(cost), 0) FROM maintenance_records WHERE company_id = $1`,
		companyID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum maintenance: %w", err)
	}
	return total, nil
}

// EntityCounts conteos por tipo para las tarjetas del dashboard.
func (r *SummaryRepo) EntityCounts(ctx context.Context, companyID string) (repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM assets WHERE company_id = $1 AND type = 'physical'),
			(SELECT COUNT(*) FROM assets WHERE company_id = $1 AND type = 'application'),
			(SELECT COUNT(*) FROM licenses WHERE company_id = $1),
			(SELECT COUNT(*) FROM contracts WHERE company_id = $1)`
	var c repository.EntityCounts
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&c.PhysicalAssets, &c.ApplicationAssets, &c.Licenses, &c.Contracts,
	)
	if err != nil {
		return repository.EntityCounts{}, fmt.Errorf("entity counts: %w", err)
	}
	return c, nil
}
