package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest alta de un activo. Los campos de infraestructura solo
// aplican cuando type=application.
type CreateAssetRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Type        string          `json:"type" validate:"required,oneof=physical application"`
	Status      string          `json:"status" validate:"omitempty,oneof=active inactive maintenance deprecated disposed"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	AnnualCost  decimal.Decimal `json:"annual_cost"`

	ApplicationType      string          `json:"application_type" validate:"omitempty,oneof=saas custom_development"`
	DomainCost           decimal.Decimal `json:"domain_cost"`
	DomainExpiry         *time.Time      `json:"domain_expiry"`
	SSLCost              decimal.Decimal `json:"ssl_cost"`
	SSLExpiry            *time.Time      `json:"ssl_expiry"`
	HostingCost          decimal.Decimal `json:"hosting_cost"`
	HostingExpiry        *time.Time      `json:"hosting_expiry"`
	ServerCost           decimal.Decimal `json:"server_cost"`
	ServerExpiry         *time.Time      `json:"server_expiry"`
	AssignedTechnicianID *string         `json:"assigned_technician_id"`
}

// UpdateAssetRequest actualización parcial: solo los campos presentes se
// aplican sobre la entidad cargada.
type UpdateAssetRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active inactive maintenance deprecated disposed"`
	MonthlyCost *decimal.Decimal `json:"monthly_cost"`
	AnnualCost  *decimal.Decimal `json:"annual_cost"`

	ApplicationType      *string          `json:"application_type" validate:"omitempty,oneof=saas custom_development"`
	DomainCost           *decimal.Decimal `json:"domain_cost"`
	DomainExpiry         *time.Time       `json:"domain_expiry"`
	SSLCost              *decimal.Decimal `json:"ssl_cost"`
	SSLExpiry            *time.Time       `json:"ssl_expiry"`
	HostingCost          *decimal.Decimal `json:"hosting_cost"`
	HostingExpiry        *time.Time       `json:"hosting_expiry"`
	ServerCost           *decimal.Decimal `json:"server_cost"`
	ServerExpiry         *time.Time       `json:"server_expiry"`
	AssignedTechnicianID *string          `json:"assigned_technician_id"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	AnnualCost  decimal.Decimal `json:"annual_cost"`

	ApplicationType      string          `json:"application_type,omitempty"`
	DomainCost           decimal.Decimal `json:"domain_cost"`
	DomainExpiry         *time.Time      `json:"domain_expiry,omitempty"`
	SSLCost              decimal.Decimal `json:"ssl_cost"`
	SSLExpiry            *time.Time      `json:"ssl_expiry,omitempty"`
	HostingCost          decimal.Decimal `json:"hosting_cost"`
	HostingExpiry        *time.Time      `json:"hosting_expiry,omitempty"`
	ServerCost           decimal.Decimal `json:"server_cost"`
	ServerExpiry         *time.Time      `json:"server_expiry,omitempty"`
	AssignedTechnicianID *string         `json:"assigned_technician_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
