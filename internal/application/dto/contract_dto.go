package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest alta de contrato.
type CreateContractRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Vendor       string          `json:"vendor" validate:"required"`
	ContractType string          `json:"contract_type"`
	StartDate    time.Time       `json:"start_date" validate:"required"`
	EndDate      time.Time       `json:"end_date" validate:"required"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
	AnnualCost   decimal.Decimal `json:"annual_cost"`
	Status       string          `json:"status" validate:"omitempty,oneof=active expired pending_renewal cancelled"`
	AutoRenewal  bool            `json:"auto_renewal"`
}

// UpdateContractRequest actualización parcial de contrato.
type UpdateContractRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Vendor       *string          `json:"vendor"`
	ContractType *string          `json:"contract_type"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	MonthlyCost  *decimal.Decimal `json:"monthly_cost"`
	AnnualCost   *decimal.Decimal `json:"annual_cost"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active expired pending_renewal cancelled"`
	AutoRenewal  *bool            `json:"auto_renewal"`
}

// ContractResponse salida de contrato. Status es el campo persistido;
// DerivedStatus se calcula por días restantes. Ambos se exponen para que el
// cliente los reconcilie.
type ContractResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Vendor        string          `json:"vendor"`
	ContractType  string          `json:"contract_type"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	MonthlyCost   decimal.Decimal `json:"monthly_cost"`
	AnnualCost    decimal.Decimal `json:"annual_cost"`
	Status        string          `json:"status"`
	DerivedStatus string          `json:"derived_status"`
	AutoRenewal   bool            `json:"auto_renewal"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ContractListResponse lista paginada de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
