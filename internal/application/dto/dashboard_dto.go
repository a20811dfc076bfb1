package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostSummaryDTO resumen consolidado de costos de una empresa.
//
// MonthlyTotal suma los mensuales de activos, licencias y contratos más el
// mensual implícito de mantenimiento (total histórico / 12). AnnualTotal es
// MonthlyTotal × 12 (derivado); DeclaredAnnualTotal suma los campos
// annual_cost persistidos. Ambas nociones de "anual" se exponen por separado.
type CostSummaryDTO struct {
	MonthlyTotal        decimal.Decimal `json:"monthly_total"`
	AnnualTotal         decimal.Decimal `json:"annual_total"`
	DeclaredAnnualTotal decimal.Decimal `json:"declared_annual_total"`
	LicenseCosts        decimal.Decimal `json:"license_costs"`
	MaintenanceCosts    decimal.Decimal `json:"maintenance_costs"`
	HardwareCosts       decimal.Decimal `json:"hardware_costs"` // todos los activos, físicos y aplicaciones
	ContractCosts       decimal.Decimal `json:"contract_costs"`
}

// EntityCountsDTO conteos por tipo para el dashboard.
type EntityCountsDTO struct {
	PhysicalAssets    int `json:"physical_assets"`
	ApplicationAssets int `json:"application_assets"`
	Licenses          int `json:"licenses"`
	Contracts         int `json:"contracts"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/:companyId/summary.
type DashboardSummaryDTO struct {
	Costs  CostSummaryDTO  `json:"costs"`
	Counts EntityCountsDTO `json:"counts"`
}

// ActivityEntryDTO entrada de la bitácora para el widget de actividad reciente.
type ActivityEntryDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExpiryAlertDTO alerta de vencimiento calculada al vuelo para el dashboard
// (misma clasificación que las notificaciones persistidas).
type ExpiryAlertDTO struct {
	AssetID    string    `json:"asset_id"`
	AssetName  string    `json:"asset_name"`
	Service    string    `json:"service"` // domain | ssl | hosting | server
	ExpiryDate time.Time `json:"expiry_date"`
	Urgency    string    `json:"urgency"` // expired | critical | upcoming
	DaysLeft   int       `json:"days_left"`
}
