package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest alta de un registro de mantenimiento.
type CreateMaintenanceRequest struct {
	AssetID       string          `json:"asset_id" validate:"required"`
	Type          string          `json:"type" validate:"required,oneof=preventive corrective emergency upgrade"`
	Cost          decimal.Decimal `json:"cost"`
	ScheduledDate time.Time       `json:"scheduled_date" validate:"required"`
	CompletedDate *time.Time      `json:"completed_date"`
	Status        string          `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

// UpdateMaintenanceRequest actualización parcial.
type UpdateMaintenanceRequest struct {
	Type          *string          `json:"type" validate:"omitempty,oneof=preventive corrective emergency upgrade"`
	Cost          *decimal.Decimal `json:"cost"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
	CompletedDate *time.Time       `json:"completed_date"`
	Status        *string          `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

// MaintenanceResponse salida de un registro de mantenimiento.
type MaintenanceResponse struct {
	ID            string          `json:"id"`
	AssetID       string          `json:"asset_id"`
	CompanyID     string          `json:"company_id"`
	Type          string          `json:"type"`
	Cost          decimal.Decimal `json:"cost"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MaintenanceListResponse lista paginada de mantenimientos.
type MaintenanceListResponse struct {
	Items []MaintenanceResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
