package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType tipo de evento de mantenimiento.
type MaintenanceType string

const (
	MaintPreventive MaintenanceType = "preventive"
	MaintCorrective MaintenanceType = "corrective"
	MaintEmergency  MaintenanceType = "emergency"
	MaintUpgrade    MaintenanceType = "upgrade"
)

// Valid informa si el tipo pertenece al conjunto cerrado.
func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintPreventive, MaintCorrective, MaintEmergency, MaintUpgrade:
		return true
	}
	return false
}

// MaintenanceStatus estado del evento.
type MaintenanceStatus string

const (
	MaintScheduled  MaintenanceStatus = "scheduled"
	MaintInProgress MaintenanceStatus = "in_progress"
	MaintCompleted  MaintenanceStatus = "completed"
	MaintCancelled  MaintenanceStatus = "cancelled"
)

// Valid informa si el estado pertenece al conjunto cerrado.
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintScheduled, MaintInProgress, MaintCompleted, MaintCancelled:
		return true
	}
	return false
}

// MaintenanceRecord evento de servicio sobre un activo. Pertenece al activo y
// se elimina en cascada con él. Cost es puntual por evento; el costo mensual
// implícito lo deriva el agregador (total histórico / 12).
type MaintenanceRecord struct {
	ID            string
	AssetID       string
	CompanyID     string
	Type          MaintenanceType
	Cost          decimal.Decimal
	ScheduledDate time.Time
	CompletedDate *time.Time
	Status        MaintenanceStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
