package dto

import "time"

// AdminUpdateCompanyRequest cambios de tenant reservados al super_admin
// (plan y activación). Actualización parcial.
type AdminUpdateCompanyRequest struct {
	Plan      *string `json:"plan" validate:"omitempty,oneof=pyme professional"`
	IsActive  *bool   `json:"is_active"`
	MaxUsers  *int    `json:"max_users" validate:"omitempty,min=1"`
	MaxAssets *int    `json:"max_assets" validate:"omitempty,min=1"`
}

// AdminCompanyListResponse listado global de tenants.
type AdminCompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SupportStatusResponse estado de la sesión de soporte del super_admin.
type SupportStatusResponse struct {
	Active    bool       `json:"active"`
	CompanyID string     `json:"company_id,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}
