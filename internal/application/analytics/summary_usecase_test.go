package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de agregación
// ──────────────────────────────────────────────────────────────────────────────

type fakeSummaryRepo struct {
	assets    repository.CostSums
	licenses  repository.CostSums
	contracts repository.CostSums
	maint     decimal.Decimal
	counts    repository.EntityCounts
}

func (f *fakeSummaryRepo) AssetCostSums(context.Context, string) (repository.CostSums, error) {
	return f.assets, nil
}
func (f *fakeSummaryRepo) LicenseCostSums(context.Context, string) (repository.CostSums, error) {
	return f.licenses, nil
}
func (f *fakeSummaryRepo) ContractCostSums(context.Context, string) (repository.CostSums, error) {
	return f.contracts, nil
}
func (f *fakeSummaryRepo) MaintenanceCostTotal(context.Context, string) (decimal.Decimal, error) {
	return f.maint, nil
}
func (f *fakeSummaryRepo) EntityCounts(context.Context, string) (repository.EntityCounts, error) {
	return f.counts, nil
}

type fakeActivityRepo struct {
	entries  []*entity.ActivityLog
	gotLimit int
}

func (f *fakeActivityRepo) Append(context.Context, *entity.ActivityLog) error { return nil }
func (f *fakeActivityRepo) ListRecent(_ context.Context, _ string, limit int) ([]*entity.ActivityLog, error) {
	f.gotLimit = limit
	return f.entries, nil
}

func readerScope() domain.Scope {
	return domain.Scope{
		ActingUserID:       "u1",
		GlobalRole:         entity.RoleTechnician,
		EffectiveCompanyID: "c1",
		CompanyRole:        entity.RoleTechnician,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary: consolidación de las cuatro fuentes de costo
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: dos activos (100 + 200 mensual), una licencia (50), un contrato
// (30) y 1200 de mantenimiento histórico. El mantenimiento aporta 1200/12 = 100
// al mensual; el total mensual es 480 y el anual derivado 5760.
func TestGetSummary_ConsolidaFuentes(t *testing.T) {
	repo := &fakeSummaryRepo{
		assets:    repository.CostSums{Monthly: dec("300"), Annual: dec("3600")},
		licenses:  repository.CostSums{Monthly: dec("50"), Annual: dec("600")},
		contracts: repository.CostSums{Monthly: dec("30"), Annual: dec("360")},
		maint:     dec("1200"),
		counts: repository.EntityCounts{
			PhysicalAssets:    1,
			ApplicationAssets: 1,
			Licenses:          1,
			Contracts:         1,
		},
	}
	uc := analytics.NewSummaryUseCase(repo, &fakeActivityRepo{})

	out, err := uc.GetSummary(context.Background(), readerScope())
	require.NoError(t, err)

	assert.True(t, dec("100").Equal(out.Costs.MaintenanceCosts),
		"mantenimiento mensual implícito = 1200/12, fue %s", out.Costs.MaintenanceCosts)
	assert.True(t, dec("480").Equal(out.Costs.MonthlyTotal),
		"mensual total = 300+50+30+100, fue %s", out.Costs.MonthlyTotal)
	assert.True(t, dec("5760").Equal(out.Costs.AnnualTotal),
		"anual derivado = mensual × 12, fue %s", out.Costs.AnnualTotal)
	assert.True(t, dec("4560").Equal(out.Costs.DeclaredAnnualTotal),
		"anual declarado = suma de annual_cost persistidos, fue %s", out.Costs.DeclaredAnnualTotal)
	assert.True(t, dec("300").Equal(out.Costs.HardwareCosts),
		"hardware reporta TODOS los activos, no solo los físicos")
	assert.True(t, dec("50").Equal(out.Costs.LicenseCosts))
	assert.True(t, dec("30").Equal(out.Costs.ContractCosts))

	assert.Equal(t, 1, out.Counts.PhysicalAssets)
	assert.Equal(t, 1, out.Counts.ApplicationAssets)
}

func TestGetSummary_EmpresaVacia_TodoCero(t *testing.T) {
	uc := analytics.NewSummaryUseCase(&fakeSummaryRepo{}, &fakeActivityRepo{})

	out, err := uc.GetSummary(context.Background(), readerScope())
	require.NoError(t, err)

	assert.True(t, out.Costs.MonthlyTotal.IsZero())
	assert.True(t, out.Costs.AnnualTotal.IsZero())
	assert.True(t, out.Costs.MaintenanceCosts.IsZero())
	assert.Zero(t, out.Counts.Licenses)
}

func TestGetSummary_SinScope_Forbidden(t *testing.T) {
	uc := analytics.NewSummaryUseCase(&fakeSummaryRepo{}, &fakeActivityRepo{})

	_, err := uc.GetSummary(context.Background(), domain.Scope{ActingUserID: "intruso"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecentActivity
// ──────────────────────────────────────────────────────────────────────────────

func TestRecentActivity_MapeaEntradas(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	activity := &fakeActivityRepo{entries: []*entity.ActivityLog{
		{ID: "a1", UserID: "u1", Action: entity.ActionCreate, EntityType: "asset", EntityID: "x", EntityName: "Laptop", CreatedAt: now},
	}}
	uc := analytics.NewSummaryUseCase(&fakeSummaryRepo{}, activity)

	out, err := uc.RecentActivity(context.Background(), readerScope(), 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Laptop", out[0].EntityName)
	assert.Equal(t, entity.ActionCreate, out[0].Action)
	assert.Equal(t, 10, activity.gotLimit)
}

func TestRecentActivity_LimiteFueraDeRango_UsaDefault(t *testing.T) {
	activity := &fakeActivityRepo{}
	uc := analytics.NewSummaryUseCase(&fakeSummaryRepo{}, activity)

	_, err := uc.RecentActivity(context.Background(), readerScope(), 500)
	require.NoError(t, err)
	assert.Equal(t, 20, activity.gotLimit, "límites fuera de [1,100] caen al default 20")
}
