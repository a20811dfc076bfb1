package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLicenseRequest alta de licencia.
type CreateLicenseRequest struct {
	AssetID      *string         `json:"asset_id"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Vendor       string          `json:"vendor"`
	LicenseType  string          `json:"license_type"`
	MaxUsers     int             `json:"max_users" validate:"min=0"`
	CurrentUsers int             `json:"current_users" validate:"min=0"`
	PurchaseDate time.Time       `json:"purchase_date"`
	ExpiryDate   *time.Time      `json:"expiry_date"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
	AnnualCost   decimal.Decimal `json:"annual_cost"`
	Status       string          `json:"status" validate:"omitempty,oneof=active expired cancelled"`
}

// UpdateLicenseRequest actualización parcial de licencia.
type UpdateLicenseRequest struct {
	AssetID      *string          `json:"asset_id"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Vendor       *string          `json:"vendor"`
	LicenseType  *string          `json:"license_type"`
	MaxUsers     *int             `json:"max_users" validate:"omitempty,min=0"`
	CurrentUsers *int             `json:"current_users" validate:"omitempty,min=0"`
	PurchaseDate *time.Time       `json:"purchase_date"`
	ExpiryDate   *time.Time       `json:"expiry_date"`
	MonthlyCost  *decimal.Decimal `json:"monthly_cost"`
	AnnualCost   *decimal.Decimal `json:"annual_cost"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active expired cancelled"`
}

// LicenseResponse salida de licencia. UsagePercent expone la restricción
// blanda currentUsers ≤ maxUsers sin rechazarla al escribir.
type LicenseResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	AssetID      *string         `json:"asset_id,omitempty"`
	Name         string          `json:"name"`
	Vendor       string          `json:"vendor"`
	LicenseType  string          `json:"license_type"`
	MaxUsers     int             `json:"max_users"`
	CurrentUsers int             `json:"current_users"`
	UsagePercent decimal.Decimal `json:"usage_percent"`
	PurchaseDate time.Time       `json:"purchase_date"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
	AnnualCost   decimal.Decimal `json:"annual_cost"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LicenseListResponse lista paginada de licencias.
type LicenseListResponse struct {
	Items []LicenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
