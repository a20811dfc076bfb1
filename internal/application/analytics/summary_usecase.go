// Package analytics contiene los casos de uso de agregación de costos y
// actividad para el dashboard de una empresa.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var twelve = decimal.NewFromInt(12)

// SummaryUseCase consolida las cuatro fuentes de costo de una empresa.
//
// Fuente de datos: SummaryRepository (consultas read-only); no accede a las
// tablas de entidades directamente.
type SummaryUseCase struct {
	summaryRepo  repository.SummaryRepository
	activityRepo repository.ActivityRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(summaryRepo repository.SummaryRepository, activityRepo repository.ActivityRepository) *SummaryUseCase {
	return &SummaryUseCase{summaryRepo: summaryRepo, activityRepo: activityRepo}
}

// GetSummary construye el DashboardSummaryDTO de la empresa del scope.
//
// Cinco consultas en paralelo: sumatorias de activos, licencias y contratos,
// total histórico de mantenimiento y conteos por tipo.
//
// Semántica temporal: activos/licencias/contratos aportan su monthly_cost;
// el mantenimiento solo guarda costo puntual por evento, así que su mensual
// implícito es el total histórico / 12. El anual mostrado es mensual × 12
// (derivado); la suma de los annual_cost persistidos se conserva aparte en
// DeclaredAnnualTotal.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, scope domain.Scope) (*dto.DashboardSummaryDTO, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	companyID := scope.EffectiveCompanyID

	type sumsResult struct {
		sums repository.CostSums
		err  error
	}
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type countsResult struct {
		counts repository.EntityCounts
		err    error
	}

	assetCh := make(chan sumsResult, 1)
	licenseCh := make(chan sumsResult, 1)
	contractCh := make(chan sumsResult, 1)
	maintCh := make(chan totalResult, 1)
	countsCh := make(chan countsResult, 1)

	go func() {
		s, err := uc.summaryRepo.AssetCostSums(ctx, companyID)
		assetCh <- sumsResult{s, err}
	}()
	go func() {
		s, err := uc.summaryRepo.LicenseCostSums(ctx, companyID)
		licenseCh <- sumsResult{s, err}
	}()
	go func() {
		s, err := uc.summaryRepo.ContractCostSums(ctx, companyID)
		contractCh <- sumsResult{s, err}
	}()
	go func() {
		t, err := uc.summaryRepo.MaintenanceCostTotal(ctx, companyID)
		maintCh <- totalResult{t, err}
	}()
	go func() {
		c, err := uc.summaryRepo.EntityCounts(ctx, companyID)
		countsCh <- countsResult{c, err}
	}()

	assets := <-assetCh
	licenses := <-licenseCh
	contracts := <-contractCh
	maint := <-maintCh
	counts := <-countsCh

	if assets.err != nil {
		return nil, fmt.Errorf("dashboard: costos de activos: %w", assets.err)
	}
	if licenses.err != nil {
		return nil, fmt.Errorf("dashboard: costos de licencias: %w", licenses.err)
	}
	if contracts.err != nil {
		return nil, fmt.Errorf("dashboard: costos de contratos: %w", contracts.err)
	}
	if maint.err != nil {
		return nil, fmt.Errorf("dashboard: costos de mantenimiento: %w", maint.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}

	maintenanceMonthly := maint.total.Div(twelve).Round(2)
	monthlyTotal := assets.sums.Monthly.
		Add(licenses.sums.Monthly).
		Add(contracts.sums.Monthly).
		Add(maintenanceMonthly).
		Round(2)
	declaredAnnual := assets.sums.Annual.
		Add(licenses.sums.Annual).
		Add(contracts.sums.Annual).
		Round(2)

	return &dto.DashboardSummaryDTO{
		Costs: dto.CostSummaryDTO{
			MonthlyTotal:        monthlyTotal,
			AnnualTotal:         monthlyTotal.Mul(twelve).Round(2),
			DeclaredAnnualTotal: declaredAnnual,
			LicenseCosts:        licenses.sums.Monthly.Round(2),
			MaintenanceCosts:    maintenanceMonthly,
			HardwareCosts:       assets.sums.Monthly.Round(2), // todos los activos, no solo físicos
			ContractCosts:       contracts.sums.Monthly.Round(2),
		},
		Counts: dto.EntityCountsDTO{
			PhysicalAssets:    counts.counts.PhysicalAssets,
			ApplicationAssets: counts.counts.ApplicationAssets,
			Licenses:          counts.counts.Licenses,
			Contracts:         counts.counts.Contracts,
		},
	}, nil
}

// RecentActivity devuelve las últimas entradas de la bitácora de la empresa.
func (uc *SummaryUseCase) RecentActivity(ctx context.Context, scope domain.Scope, limit int) ([]dto.ActivityEntryDTO, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, err := uc.activityRepo.ListRecent(ctx, scope.EffectiveCompanyID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", err)
	}
	out := make([]dto.ActivityEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityEntryDTO{
			ID:         e.ID,
			UserID:     e.UserID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			EntityName: e.EntityName,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}
