package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// LicenseRepository puerto de persistencia para License, scoped por empresa.
type LicenseRepository interface {
	Create(ctx context.Context, l *entity.License) error
	GetByID(ctx context.Context, companyID, id string) (*entity.License, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.License, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, l *entity.License) error
	Delete(ctx context.Context, companyID, id string) error
}
