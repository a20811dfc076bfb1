package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CostSums sumatorias de costo de una fuente (COALESCE a 0, nunca null).
type CostSums struct {
	Monthly decimal.Decimal
	Annual  decimal.Decimal
}

// EntityCounts conteos de entidades de la empresa para el dashboard.
type EntityCounts struct {
	PhysicalAssets    int
	ApplicationAssets int
	Licenses          int
	Contracts         int
}

// SummaryRepository consultas read-only de agregación de costos. Cada fuente
// se suma por separado; el mantenimiento suma el costo puntual de TODOS los
// registros históricos (sin ventana temporal).
type SummaryRepository interface {
	AssetCostSums(ctx context.Context, companyID string) (CostSums, error)
	LicenseCostSums(ctx context.Context, companyID string) (CostSums, error)
	ContractCostSums(ctx context.Context, companyID string) (CostSums, error)
	MaintenanceCostTotal(ctx context.Context, companyID string) (decimal.Decimal, error)
	EntityCounts(ctx context.Context, companyID string) (EntityCounts, error)
}
