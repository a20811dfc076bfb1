package domain

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// Action operación autorizable dentro del scope de una empresa.
type Action int

const (
	// ActionRead lecturas de cualquier entidad de la empresa.
	ActionRead Action = iota
	// ActionCreateMaintenance alta de registros de mantenimiento (permitida al technician).
	ActionCreateMaintenance
	// ActionWriteEntities create/update/delete de activos, contratos y licencias,
	// y update/delete de mantenimientos.
	ActionWriteEntities
	// ActionManageMembers invitar miembros y cambiar roles de la empresa.
	ActionManageMembers
	// ActionManageCompany editar datos de la propia empresa.
	ActionManageCompany
)

// minLevel nivel de rol mínimo requerido por acción.
func (a Action) minLevel() int {
	switch a {
	case ActionRead, ActionCreateMaintenance:
		return entity.RoleTechnician.Level()
	case ActionWriteEntities:
		return entity.RoleTechnicalAdmin.Level()
	case ActionManageMembers, ActionManageCompany:
		return entity.RoleManagerOwner.Level()
	}
	return entity.RoleSuperAdmin.Level()
}

// Scope contexto de autorización de UNA petición. Se construye una sola vez a
// partir del token y de la sesión de soporte, y se pasa explícitamente por la
// cadena de llamadas; nunca se lee de estado ambiente.
type Scope struct {
	ActingUserID       string
	GlobalRole         entity.Role
	EffectiveCompanyID string
	CompanyRole        entity.Role // rol de la membresía en la empresa efectiva ("" si super_admin sin membresía)
	IsSupportOverride  bool
}

// IsSuperAdmin informa si el actor tiene rol global super_admin.
func (s Scope) IsSuperAdmin() bool {
	return s.GlobalRole == entity.RoleSuperAdmin
}

// Can informa si el actor puede ejecutar la acción dentro de la empresa efectiva.
// super_admin puede todo (global); para el resto decide el rol de la membresía.
func (s Scope) Can(a Action) bool {
	if s.IsSuperAdmin() {
		return true
	}
	return s.CompanyRole.Level() >= a.minLevel()
}

// Authorize devuelve ErrForbidden si la acción no está permitida.
func (s Scope) Authorize(a Action) error {
	if !s.Can(a) {
		return ErrForbidden
	}
	return nil
}
