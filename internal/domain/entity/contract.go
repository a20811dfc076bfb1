package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus estado persistido de un contrato.
type ContractStatus string

const (
	ContractActive         ContractStatus = "active"
	ContractExpired        ContractStatus = "expired"
	ContractPendingRenewal ContractStatus = "pending_renewal"
	ContractCancelled      ContractStatus = "cancelled"
)

// Valid informa si el estado pertenece al conjunto cerrado.
func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractExpired, ContractPendingRenewal, ContractCancelled:
		return true
	}
	return false
}

// Contract acuerdo con un proveedor.
type Contract struct {
	ID           string
	CompanyID    string
	Name         string
	Vendor       string
	ContractType string
	StartDate    time.Time
	EndDate      time.Time
	MonthlyCost  decimal.Decimal
	AnnualCost   decimal.Decimal
	Status       ContractStatus
	AutoRenewal  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DerivedStatus clasifica el contrato por días restantes hasta EndDate,
// independiente del campo Status persistido. Ambas nociones se exponen en la
// respuesta para que el cliente las reconcilie.
func (c Contract) DerivedStatus(now time.Time) ContractStatus {
	if c.Status == ContractCancelled {
		return ContractCancelled
	}
	switch {
	case c.EndDate.Before(now):
		return ContractExpired
	case c.EndDate.Before(now.AddDate(0, 0, 30)):
		return ContractPendingRenewal
	default:
		return ContractActive
	}
}
