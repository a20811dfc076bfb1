package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

type memLicenses struct {
	byID map[string]*entity.License
}

func newMemLicenses() *memLicenses { return &memLicenses{byID: map[string]*entity.License{}} }

func (m *memLicenses) Create(_ context.Context, l *entity.License) error {
	m.byID[l.ID] = l
	return nil
}
func (m *memLicenses) GetByID(_ context.Context, companyID, id string) (*entity.License, error) {
	l := m.byID[id]
	if l == nil || l.CompanyID != companyID {
		return nil, nil
	}
	return l, nil
}
func (m *memLicenses) ListByCompany(context.Context, string, int, int) ([]*entity.License, error) {
	return nil, nil
}
func (m *memLicenses) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, l := range m.byID {
		if l.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
func (m *memLicenses) Update(_ context.Context, l *entity.License) error {
	m.byID[l.ID] = l
	return nil
}
func (m *memLicenses) Delete(_ context.Context, _, id string) error {
	delete(m.byID, id)
	return nil
}

type licTx struct {
	licenses *memLicenses
	activity *memActivity
}

func (s *licTx) Run(_ context.Context, fn func(repository.Atomic) error) error {
	return fn(repository.Atomic{Licenses: s.licenses, Activity: s.activity})
}

func buildLicenseUC() (*usecase.LicenseUseCase, *memLicenses, *memActivity) {
	licenses := newMemLicenses()
	activity := &memActivity{}
	companies := &stubCompanies{company: &entity.Company{
		ID: "c1", Name: "Acme", Plan: entity.PlanPyme, MaxAssets: 500, IsActive: true, RUC: "1790012345001",
	}}
	uc := usecase.NewLicenseUseCase(licenses, newMemAssets(), companies, &licTx{licenses: licenses, activity: activity})
	return uc, licenses, activity
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado: conjunto cerrado
// ──────────────────────────────────────────────────────────────────────────────

func TestLicenseCreate_EstadoPorDefectoActive(t *testing.T) {
	uc, licenses, activity := buildLicenseUC()

	out, err := uc.Create(context.Background(), writerScope(), dto.CreateLicenseRequest{
		Name: "Office 365", MaxUsers: 20, CurrentUsers: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "active", out.Status, "sin estado explícito se asume active")
	assert.Len(t, licenses.byID, 1)
	require.Len(t, activity.entries, 1)
	assert.Equal(t, entity.ActionCreate, activity.entries[0].Action)
}

func TestLicenseCreate_EstadoInvalido(t *testing.T) {
	uc, licenses, _ := buildLicenseUC()

	_, err := uc.Create(context.Background(), writerScope(), dto.CreateLicenseRequest{
		Name: "Office 365", Status: "estado-basura",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el estado de licencia es un conjunto cerrado")
	assert.Empty(t, licenses.byID)
}

func TestLicenseUpdate_EstadoInvalido(t *testing.T) {
	uc, _, _ := buildLicenseUC()
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateLicenseRequest{Name: "Antivirus"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), writerScope(), created.ID, dto.UpdateLicenseRequest{
		Status: strPtr("vencida"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLicenseUpdate_EstadoValido(t *testing.T) {
	uc, licenses, _ := buildLicenseUC()
	created, err := uc.Create(context.Background(), writerScope(), dto.CreateLicenseRequest{Name: "Antivirus"})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), writerScope(), created.ID, dto.UpdateLicenseRequest{
		Status: strPtr("cancelled"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", out.Status)
	assert.Equal(t, entity.LicenseCancelled, licenses.byID[created.ID].Status)
}
