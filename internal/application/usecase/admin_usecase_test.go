package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

type stubSupportRepo struct{}

func (stubSupportRepo) Upsert(context.Context, *entity.SupportSession) error { return nil }
func (stubSupportRepo) Get(context.Context, string) (*entity.SupportSession, error) {
	return nil, nil
}
func (stubSupportRepo) Delete(context.Context, string) error { return nil }

func superScope() domain.Scope {
	return domain.Scope{ActingUserID: "root-1", GlobalRole: entity.RoleSuperAdmin}
}

func buildAdminUC() (*usecase.AdminUseCase, *memCompanies) {
	companies := &memCompanies{byID: map[string]*entity.Company{
		"c1": {ID: "c1", Name: "Acme", Plan: entity.PlanPyme, MaxUsers: 10, MaxAssets: 500, IsActive: true, RUC: "1790012345001"},
	}}
	uc := usecase.NewAdminUseCase(companies, stubSupportRepo{}, &stubTx{})
	return uc, companies
}

func TestAdminDeleteCompany_EliminaElTenant(t *testing.T) {
	uc, companies := buildAdminUC()

	require.NoError(t, uc.DeleteCompany(context.Background(), superScope(), "c1"))
	assert.Empty(t, companies.byID, "el tenant desaparece; el schema cascadea su contenido")
}

func TestAdminDeleteCompany_NoSuperAdmin_Forbidden(t *testing.T) {
	uc, companies := buildAdminUC()
	scope := superScope()
	scope.GlobalRole = entity.RoleManagerOwner

	err := uc.DeleteCompany(context.Background(), scope, "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, companies.byID, 1)
}

func TestAdminDeleteCompany_Inexistente_NotFound(t *testing.T) {
	uc, _ := buildAdminUC()

	err := uc.DeleteCompany(context.Background(), superScope(), "c-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
