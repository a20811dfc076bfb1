package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// MaintenanceRepository puerto de persistencia para MaintenanceRecord.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.MaintenanceRecord) error
	GetByID(ctx context.Context, companyID, id string) (*entity.MaintenanceRecord, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.MaintenanceRecord, error)
	ListByAsset(ctx context.Context, companyID, assetID string) ([]*entity.MaintenanceRecord, error)
	Update(ctx context.Context, m *entity.MaintenanceRecord) error
	Delete(ctx context.Context, companyID, id string) error
}
