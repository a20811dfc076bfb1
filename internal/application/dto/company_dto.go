package dto

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CreateCompanyRequest alta de una empresa adicional para un usuario existente
// (queda como manager_owner de la nueva).
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Plan         string `json:"plan" validate:"required,oneof=pyme professional"`
	RUC          string `json:"ruc"`
	Cedula       string `json:"cedula"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// CompanyResponse salida de una empresa, con los límites de su plan.
type CompanyResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Plan         string            `json:"plan"`
	MaxUsers     int               `json:"max_users"`
	MaxAssets    int               `json:"max_assets"`
	IsActive     bool              `json:"is_active"`
	RUC          string            `json:"ruc,omitempty"`
	Cedula       string            `json:"cedula,omitempty"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	ContactEmail string            `json:"contact_email"`
	Limits       entity.PlanLimits `json:"limits"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// MembershipResponse una empresa a la que pertenece el usuario y con qué rol.
type MembershipResponse struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// MembershipListResponse respuesta de GET /api/companies.
type MembershipListResponse struct {
	Items []MembershipResponse `json:"items"`
}

// AddMemberRequest incorporación de un usuario existente a la empresa.
// super_admin no es asignable: ese rol es global, no de membresía.
type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=technical_admin manager_owner technician"`
}

// MemberResponse miembro de una empresa.
type MemberResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}
