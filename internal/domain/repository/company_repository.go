package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByTaxID busca por RUC o cédula indistintamente (ambos únicos).
	GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	// Delete elimina la empresa; el schema cascadea activos, contratos,
	// licencias, mantenimientos, membresías, notificaciones y bitácora.
	Delete(ctx context.Context, id string) error
}
