package entity

import "time"

// Role rol de un usuario. A nivel global actúa como rol por defecto; dentro de
// una empresa manda el rol de la membresía user_companies, salvo super_admin
// que es global.
type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleManagerOwner   Role = "manager_owner"
	RoleTechnicalAdmin Role = "technical_admin"
	RoleTechnician     Role = "technician"
)

// Valid informa si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleManagerOwner, RoleTechnicalAdmin, RoleTechnician:
		return true
	}
	return false
}

// Level posición en la jerarquía de permisos:
// super_admin > manager_owner > technical_admin > technician.
func (r Role) Level() int {
	switch r {
	case RoleSuperAdmin:
		return 4
	case RoleManagerOwner:
		return 3
	case RoleTechnicalAdmin:
		return 2
	case RoleTechnician:
		return 1
	}
	return 0
}

// IsAdminTier informa si el rol es de nivel administrativo dentro de la empresa
// (destinatarios por defecto de las alertas de vencimiento).
func (r Role) IsAdminTier() bool {
	return r == RoleManagerOwner || r == RoleTechnicalAdmin
}

// UserCompany membresía N:M entre usuarios y empresas. El rol aquí, no el rol
// global del User, gobierna los permisos dentro del scope de esa empresa.
type UserCompany struct {
	UserID    string
	CompanyID string
	Role      Role
	CreatedAt time.Time
}

// Member vista de un miembro de la empresa (join users × user_companies).
type Member struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Role      Role
}
