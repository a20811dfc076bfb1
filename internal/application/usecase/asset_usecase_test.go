package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type memAssets struct {
	byID map[string]*entity.Asset
}

func newMemAssets() *memAssets { return &memAssets{byID: map[string]*entity.Asset{}} }

func (m *memAssets) Create(_ context.Context, a *entity.Asset) error {
	m.byID[a.ID] = a
	return nil
}
func (m *memAssets) GetByID(_ context.Context, companyID, id string) (*entity.Asset, error) {
	a := m.byID[id]
	if a == nil || a.CompanyID != companyID {
		return nil, nil // cross-tenant es indistinguible de inexistente
	}
	return a, nil
}
func (m *memAssets) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range m.byID {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m *memAssets) ListApplications(context.Context, string) ([]*entity.Asset, error) {
	return nil, nil
}
func (m *memAssets) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, a := range m.byID {
		if a.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
func (m *memAssets) CountApplications(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, a := range m.byID {
		if a.CompanyID == companyID && a.Type == entity.AssetApplication {
			n++
		}
	}
	return n, nil
}
func (m *memAssets) Update(_ context.Context, a *entity.Asset) error {
	m.byID[a.ID] = a
	return nil
}
func (m *memAssets) Delete(_ context.Context, _, id string) error {
	delete(m.byID, id)
	return nil
}

type stubCompanies struct {
	company *entity.Company
}

func (s *stubCompanies) Create(context.Context, *entity.Company) error { return nil }
func (s *stubCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if s.company != nil && s.company.ID == id {
		return s.company, nil
	}
	return nil, nil
}
func (s *stubCompanies) GetByTaxID(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (s *stubCompanies) Update(context.Context, *entity.Company) error { return nil }
func (s *stubCompanies) List(context.Context, int, int) ([]*entity.Company, error) {
	return nil, nil
}
func (s *stubCompanies) Delete(context.Context, string) error { return nil }

type memActivity struct {
	entries []*entity.ActivityLog
}

func (m *memActivity) Append(_ context.Context, e *entity.ActivityLog) error {
	m.entries = append(m.entries, e)
	return nil
}
func (m *memActivity) ListRecent(context.Context, string, int) ([]*entity.ActivityLog, error) {
	return m.entries, nil
}

// stubTx ejecuta fn entregando los fakes como si fueran repos transaccionales.
type stubTx struct {
	assets   *memAssets
	activity *memActivity
}

func (s *stubTx) Run(_ context.Context, fn func(repository.Atomic) error) error {
	return fn(repository.Atomic{Assets: s.assets, Activity: s.activity})
}

func writerScope() domain.Scope {
	return domain.Scope{
		ActingUserID:       "admin-1",
		GlobalRole:         entity.RoleTechnicalAdmin,
		EffectiveCompanyID: "c1",
		CompanyRole:        entity.RoleTechnicalAdmin,
	}
}

func buildAssetUC(maxAssets int) (*usecase.AssetUseCase, *memAssets, *memActivity) {
	assets := newMemAssets()
	activity := &memActivity{}
	companies := &stubCompanies{company: &entity.Company{
		ID: "c1", Name: "Acme", Plan: entity.PlanPyme, MaxAssets: maxAssets, IsActive: true, RUC: "1790012345001",
	}}
	uc := usecase.NewAssetUseCase(assets, companies, &stubTx{assets: assets, activity: activity})
	return uc, assets, activity
}

func strPtr(s string) *string                   { return &s }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetCreate_RegistraActivoYBitacora(t *testing.T) {
	uc, assets, activity := buildAssetUC(500)

	out, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{
		Name:        "Laptop Dell",
		Type:        "physical",
		MonthlyCost: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", out.CompanyID)
	assert.Equal(t, "active", out.Status, "sin estado explícito se asume active")
	assert.Len(t, assets.byID, 1)

	require.Len(t, activity.entries, 1, "toda mutación deja entrada de bitácora")
	assert.Equal(t, entity.ActionCreate, activity.entries[0].Action)
	assert.Equal(t, "asset", activity.entries[0].EntityType)
	assert.Equal(t, "Laptop Dell", activity.entries[0].EntityName)
	assert.Equal(t, "admin-1", activity.entries[0].UserID)
}

func TestAssetCreate_LimiteDelPlan(t *testing.T) {
	uc, _, _ := buildAssetUC(1)

	_, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "A", Type: "physical"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "B", Type: "physical"})
	assert.ErrorIs(t, err, domain.ErrPlanLimitReached)
}

func TestAssetCreate_TechnicianProhibido(t *testing.T) {
	uc, _, activity := buildAssetUC(500)
	scope := writerScope()
	scope.CompanyRole = entity.RoleTechnician

	_, err := uc.Create(context.Background(), scope, dto.CreateAssetRequest{Name: "A", Type: "physical"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, activity.entries)
}

func TestAssetCreate_TipoInvalido(t *testing.T) {
	uc, _, _ := buildAssetUC(500)

	_, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "A", Type: "vehiculo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetCreate_AplicacionConDefaults(t *testing.T) {
	uc, _, _ := buildAssetUC(500)

	out, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{
		Name: "CRM", Type: "application",
	})
	require.NoError(t, err)
	assert.Equal(t, "saas", out.ApplicationType, "subtipo por defecto de aplicaciones es saas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetUpdate_SoloCamposPresentes(t *testing.T) {
	uc, _, activity := buildAssetUC(500)
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{
		Name:        "Servidor",
		Type:        "physical",
		MonthlyCost: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), writerScope(), created.ID, dto.UpdateAssetRequest{
		MonthlyCost: decPtr(decimal.NewFromInt(95)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Servidor", out.Name, "los campos ausentes no cambian")
	assert.True(t, decimal.NewFromInt(95).Equal(out.MonthlyCost))
	assert.True(t, out.UpdatedAt.After(created.CreatedAt) || out.UpdatedAt.Equal(created.CreatedAt),
		"updated_at se refresca en cada update")

	require.Len(t, activity.entries, 2)
	assert.Equal(t, entity.ActionUpdate, activity.entries[1].Action)
}

func TestAssetUpdate_EstadoInvalido(t *testing.T) {
	uc, _, _ := buildAssetUC(500)
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "S", Type: "physical"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), writerScope(), created.ID, dto.UpdateAssetRequest{
		Status: strPtr("roto"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetUpdate_CamposDeAplicacionEnFisico_Invalido(t *testing.T) {
	uc, _, _ := buildAssetUC(500)
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "Impresora", Type: "physical"})
	require.NoError(t, err)

	exp := time.Now().AddDate(1, 0, 0)
	_, err = uc.Update(context.Background(), writerScope(), created.ID, dto.UpdateAssetRequest{
		SSLExpiry: &exp,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un activo físico no puede adquirir servicios de infraestructura")
}

func TestAssetUpdate_CamposDeAplicacionEnAplicacion_OK(t *testing.T) {
	uc, _, _ := buildAssetUC(500)
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "CRM", Type: "application"})
	require.NoError(t, err)

	exp := time.Now().AddDate(0, 6, 0)
	out, err := uc.Update(context.Background(), writerScope(), created.ID, dto.UpdateAssetRequest{
		SSLExpiry: &exp,
	})
	require.NoError(t, err)
	require.NotNil(t, out.SSLExpiry)
	assert.True(t, out.SSLExpiry.Equal(exp))
}

func TestAssetUpdate_OtraEmpresa_NotFound(t *testing.T) {
	uc, assets, _ := buildAssetUC(500)
	assets.byID["ajeno"] = &entity.Asset{ID: "ajeno", CompanyID: "c2", Name: "Ajeno", CreatedAt: time.Now()}

	_, err := uc.Update(context.Background(), writerScope(), "ajeno", dto.UpdateAssetRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un ID de otra empresa es indistinguible de inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetDelete_DejaBitacora(t *testing.T) {
	uc, assets, activity := buildAssetUC(500)
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateAssetRequest{Name: "Viejo", Type: "physical"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), writerScope(), created.ID))

	assert.Empty(t, assets.byID)
	require.Len(t, activity.entries, 2)
	assert.Equal(t, entity.ActionDelete, activity.entries[1].Action)
	assert.Equal(t, "Viejo", activity.entries[1].EntityName)
}

func TestAssetDelete_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := buildAssetUC(500)
	err := uc.Delete(context.Background(), writerScope(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
