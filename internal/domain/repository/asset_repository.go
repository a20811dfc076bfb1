package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetRepository puerto de persistencia para Asset. Toda lectura por ID
// filtra además por company_id: un ID de otra empresa es indistinguible de
// inexistente.
type AssetRepository interface {
	Create(ctx context.Context, a *entity.Asset) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Asset, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Asset, error)
	// ListApplications devuelve los activos type=application (insumo del motor de alertas).
	ListApplications(ctx context.Context, companyID string) ([]*entity.Asset, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	CountApplications(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, a *entity.Asset) error
	Delete(ctx context.Context, companyID, id string) error
}
