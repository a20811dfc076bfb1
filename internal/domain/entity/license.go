package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LicenseStatus estado de una licencia.
type LicenseStatus string

const (
	LicenseActive    LicenseStatus = "active"
	LicenseExpired   LicenseStatus = "expired"
	LicenseCancelled LicenseStatus = "cancelled"
)

// Valid informa si el estado pertenece al conjunto cerrado.
func (s LicenseStatus) Valid() bool {
	switch s {
	case LicenseActive, LicenseExpired, LicenseCancelled:
		return true
	}
	return false
}

// License derecho de uso de software. AssetID es una back-reference opcional;
// al borrar el activo la referencia se anula, la licencia sobrevive.
type License struct {
	ID           string
	CompanyID    string
	AssetID      *string
	Name         string
	Vendor       string
	LicenseType  string
	MaxUsers     int
	CurrentUsers int
	PurchaseDate time.Time
	ExpiryDate   *time.Time
	MonthlyCost  decimal.Decimal
	AnnualCost   decimal.Decimal
	Status       LicenseStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsagePercent porcentaje de puestos usados. currentUsers ≤ maxUsers es una
// restricción blanda: se expone como porcentaje, no se rechaza al escribir.
func (l License) UsagePercent() decimal.Decimal {
	if l.MaxUsers <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(l.CurrentUsers)).
		Div(decimal.NewFromInt(int64(l.MaxUsers))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
