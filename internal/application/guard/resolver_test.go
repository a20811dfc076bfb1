package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/guard"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de membresías y sesiones de soporte
// ──────────────────────────────────────────────────────────────────────────────

type fakeMemberships struct {
	byKey map[string]*entity.UserCompany // userID|companyID
}

func (f *fakeMemberships) Create(context.Context, *entity.UserCompany) error { return nil }
func (f *fakeMemberships) Get(_ context.Context, userID, companyID string) (*entity.UserCompany, error) {
	return f.byKey[userID+"|"+companyID], nil
}
func (f *fakeMemberships) ListByUser(context.Context, string) ([]*entity.UserCompany, error) {
	return nil, nil
}
func (f *fakeMemberships) ListMembers(context.Context, string) ([]*entity.Member, error) {
	return nil, nil
}
func (f *fakeMemberships) ListMembersByRole(context.Context, string, entity.Role) ([]*entity.Member, error) {
	return nil, nil
}
func (f *fakeMemberships) CountByCompany(context.Context, string) (int, error) { return 0, nil }
func (f *fakeMemberships) Delete(context.Context, string, string) error        { return nil }

type fakeSupport struct {
	sessions map[string]*entity.SupportSession // adminUserID
}

func (f *fakeSupport) Upsert(_ context.Context, s *entity.SupportSession) error {
	f.sessions[s.AdminUserID] = s
	return nil
}
func (f *fakeSupport) Get(_ context.Context, adminUserID string) (*entity.SupportSession, error) {
	return f.sessions[adminUserID], nil
}
func (f *fakeSupport) Delete(_ context.Context, adminUserID string) error {
	delete(f.sessions, adminUserID)
	return nil
}

func buildResolver(memberships map[string]*entity.UserCompany) (*guard.Resolver, *fakeSupport) {
	support := &fakeSupport{sessions: map[string]*entity.SupportSession{}}
	return guard.NewResolver(&fakeMemberships{byKey: memberships}, support), support
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de scope
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_MiembroObtieneSuRolDeEmpresa(t *testing.T) {
	r, _ := buildResolver(map[string]*entity.UserCompany{
		"u1|c1": {UserID: "u1", CompanyID: "c1", Role: entity.RoleTechnicalAdmin},
	})

	scope, err := r.Resolve(context.Background(), "u1", entity.RoleTechnician, "c1")
	require.NoError(t, err)

	assert.Equal(t, "c1", scope.EffectiveCompanyID)
	assert.Equal(t, entity.RoleTechnicalAdmin, scope.CompanyRole,
		"manda el rol de la membresía, no el rol global del token")
	assert.False(t, scope.IsSupportOverride)
}

func TestResolve_SinMembresia_Forbidden(t *testing.T) {
	r, _ := buildResolver(map[string]*entity.UserCompany{
		"u1|c1": {UserID: "u1", CompanyID: "c1", Role: entity.RoleManagerOwner},
	})

	_, err := r.Resolve(context.Background(), "u1", entity.RoleManagerOwner, "c2")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"nunca se re-escopea en silencio a otra empresa")
}

func TestResolve_SinEmpresaSolicitada_Forbidden(t *testing.T) {
	r, _ := buildResolver(nil)

	_, err := r.Resolve(context.Background(), "u1", entity.RoleTechnician, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolve_SuperAdminSinSesion_EmpresaSolicitada(t *testing.T) {
	r, _ := buildResolver(nil)

	scope, err := r.Resolve(context.Background(), "admin", entity.RoleSuperAdmin, "c9")
	require.NoError(t, err)

	assert.Equal(t, "c9", scope.EffectiveCompanyID,
		"super_admin accede a cualquier empresa sin membresía")
	assert.False(t, scope.IsSupportOverride)
}

func TestResolve_ModoSoporte_IgnoraLaSolicitada(t *testing.T) {
	r, support := buildResolver(nil)
	require.NoError(t, support.Upsert(context.Background(), &entity.SupportSession{
		AdminUserID: "admin",
		CompanyID:   "c-soporte",
		GrantedBy:   "admin",
		StartedAt:   time.Now(),
	}))

	scope, err := r.Resolve(context.Background(), "admin", entity.RoleSuperAdmin, "c-otra")
	require.NoError(t, err)

	assert.Equal(t, "c-soporte", scope.EffectiveCompanyID,
		"con sesión activa TODA resolución apunta a la empresa de soporte")
	assert.True(t, scope.IsSupportOverride)
}

func TestResolve_SalirDeSoporte_VuelveAlAlcanceGlobal(t *testing.T) {
	r, support := buildResolver(nil)
	require.NoError(t, support.Upsert(context.Background(), &entity.SupportSession{
		AdminUserID: "admin", CompanyID: "c-soporte", GrantedBy: "admin", StartedAt: time.Now(),
	}))
	require.NoError(t, support.Delete(context.Background(), "admin"))

	scope, err := r.Resolve(context.Background(), "admin", entity.RoleSuperAdmin, "c-otra")
	require.NoError(t, err)

	assert.Equal(t, "c-otra", scope.EffectiveCompanyID)
	assert.False(t, scope.IsSupportOverride, "al terminar la sesión el override desaparece")
}

func TestResolve_SesionDeOtroAdmin_NoAfecta(t *testing.T) {
	r, support := buildResolver(map[string]*entity.UserCompany{
		"u1|c1": {UserID: "u1", CompanyID: "c1", Role: entity.RoleTechnician},
	})
	require.NoError(t, support.Upsert(context.Background(), &entity.SupportSession{
		AdminUserID: "otro-admin", CompanyID: "c-soporte", GrantedBy: "otro-admin", StartedAt: time.Now(),
	}))

	scope, err := r.Resolve(context.Background(), "u1", entity.RoleTechnician, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", scope.EffectiveCompanyID)
	assert.False(t, scope.IsSupportOverride)
}
