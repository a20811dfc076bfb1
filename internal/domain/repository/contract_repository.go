package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ContractRepository puerto de persistencia para Contract, scoped por empresa.
type ContractRepository interface {
	Create(ctx context.Context, c *entity.Contract) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Contract, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Contract, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, c *entity.Contract) error
	Delete(ctx context.Context, companyID, id string) error
}
