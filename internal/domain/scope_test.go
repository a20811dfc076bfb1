package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func scopeWithRole(r entity.Role) domain.Scope {
	return domain.Scope{
		ActingUserID:       "u1",
		GlobalRole:         entity.RoleManagerOwner,
		EffectiveCompanyID: "c1",
		CompanyRole:        r,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Jerarquía de roles por acción
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_TechnicianLeeYRegistraMantenimiento(t *testing.T) {
	s := scopeWithRole(entity.RoleTechnician)

	assert.True(t, s.Can(domain.ActionRead))
	assert.True(t, s.Can(domain.ActionCreateMaintenance),
		"technician debe poder registrar mantenimientos")
	assert.False(t, s.Can(domain.ActionWriteEntities),
		"technician no escribe activos, contratos ni licencias")
	assert.False(t, s.Can(domain.ActionManageCompany))
}

func TestScope_TechnicalAdminEscribeEntidades(t *testing.T) {
	s := scopeWithRole(entity.RoleTechnicalAdmin)

	assert.True(t, s.Can(domain.ActionWriteEntities))
	assert.False(t, s.Can(domain.ActionManageMembers),
		"gestión de miembros es exclusiva del manager_owner")
}

func TestScope_ManagerOwnerGestionaEmpresa(t *testing.T) {
	s := scopeWithRole(entity.RoleManagerOwner)

	assert.True(t, s.Can(domain.ActionManageMembers))
	assert.True(t, s.Can(domain.ActionManageCompany))
}

func TestScope_SuperAdminPuedeTodo(t *testing.T) {
	// super_admin sin membresía (CompanyRole vacío) igual puede todo.
	s := domain.Scope{
		ActingUserID:       "admin",
		GlobalRole:         entity.RoleSuperAdmin,
		EffectiveCompanyID: "c1",
	}

	assert.True(t, s.IsSuperAdmin())
	assert.True(t, s.Can(domain.ActionManageCompany))
	assert.NoError(t, s.Authorize(domain.ActionWriteEntities))
}

func TestScope_SinMembresia_TodoProhibido(t *testing.T) {
	s := domain.Scope{ActingUserID: "u1", GlobalRole: entity.RoleTechnician, EffectiveCompanyID: "c1"}

	assert.False(t, s.Can(domain.ActionRead),
		"sin rol de membresía no hay ni lectura")
	assert.ErrorIs(t, s.Authorize(domain.ActionRead), domain.ErrForbidden)
}

func TestScope_AuthorizeDevuelveForbidden(t *testing.T) {
	s := scopeWithRole(entity.RoleTechnician)
	assert.ErrorIs(t, s.Authorize(domain.ActionWriteEntities), domain.ErrForbidden)
}
