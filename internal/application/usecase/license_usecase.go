package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// LicenseUseCase reglas de negocio para licencias de software.
type LicenseUseCase struct {
	licenses  repository.LicenseRepository
	assets    repository.AssetRepository
	companies repository.CompanyRepository
	tx        repository.TxRunner
}

// NewLicenseUseCase construye el caso de uso.
func NewLicenseUseCase(licenses repository.LicenseRepository, assets repository.AssetRepository, companies repository.CompanyRepository, tx repository.TxRunner) *LicenseUseCase {
	return &LicenseUseCase{licenses: licenses, assets: assets, companies: companies, tx: tx}
}

// Create registra una licencia, aplicando el límite del plan. Si referencia un
// activo, este debe existir en la misma empresa.
func (uc *LicenseUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	if in.Name == "" || in.MaxUsers < 0 || in.CurrentUsers < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := entity.LicenseStatus(in.Status)
	if in.Status == "" {
		status = entity.LicenseActive
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companies.GetByID(ctx, scope.EffectiveCompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.licenses.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if total >= entity.LimitsFor(company.Plan).MaxLicenses {
		return nil, domain.ErrPlanLimitReached
	}
	if in.AssetID != nil && *in.AssetID != "" {
		a, err := uc.assets.GetByID(ctx, company.ID, *in.AssetID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	l := &entity.License{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		AssetID:      in.AssetID,
		Name:         in.Name,
		Vendor:       in.Vendor,
		LicenseType:  in.LicenseType,
		MaxUsers:     in.MaxUsers,
		CurrentUsers: in.CurrentUsers,
		PurchaseDate: in.PurchaseDate,
		ExpiryDate:   in.ExpiryDate,
		MonthlyCost:  in.MonthlyCost,
		AnnualCost:   in.AnnualCost,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Licenses.Create(ctx, l); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionCreate, "license", l.ID, l.Name))
	})
	if err != nil {
		return nil, err
	}
	return toLicenseResponse(l), nil
}

// GetByID obtiene una licencia dentro del scope.
func (uc *LicenseUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.LicenseResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	l, err := uc.licenses.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toLicenseResponse(l), nil
}

// List lista las licencias de la empresa con paginación.
func (uc *LicenseUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.LicenseListResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.licenses.ListByCompany(ctx, scope.EffectiveCompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLicenseResponse(l))
	}
	return &dto.LicenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualización parcial de la licencia.
func (uc *LicenseUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	l, err := uc.licenses.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}

	if in.AssetID != nil {
		if *in.AssetID != "" {
			a, err := uc.assets.GetByID(ctx, scope.EffectiveCompanyID, *in.AssetID)
			if err != nil {
				return nil, err
			}
			if a == nil {
				return nil, domain.ErrNotFound
			}
			l.AssetID = in.AssetID
		} else {
			l.AssetID = nil
		}
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Vendor != nil {
		l.Vendor = *in.Vendor
	}
	if in.LicenseType != nil {
		l.LicenseType = *in.LicenseType
	}
	if in.MaxUsers != nil {
		if *in.MaxUsers < 0 {
			return nil, domain.ErrInvalidInput
		}
		l.MaxUsers = *in.MaxUsers
	}
	if in.CurrentUsers != nil {
		if *in.CurrentUsers < 0 {
			return nil, domain.ErrInvalidInput
		}
		l.CurrentUsers = *in.CurrentUsers
	}
	if in.PurchaseDate != nil {
		l.PurchaseDate = *in.PurchaseDate
	}
	if in.ExpiryDate != nil {
		l.ExpiryDate = in.ExpiryDate
	}
	if in.MonthlyCost != nil {
		l.MonthlyCost = *in.MonthlyCost
	}
	if in.AnnualCost != nil {
		l.AnnualCost = *in.AnnualCost
	}
	if in.Status != nil {
		s := entity.LicenseStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		l.Status = s
	}
	l.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Licenses.Update(ctx, l); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionUpdate, "license", l.ID, l.Name))
	})
	if err != nil {
		return nil, err
	}
	return toLicenseResponse(l), nil
}

// Delete elimina la licencia.
func (uc *LicenseUseCase) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return err
	}
	l, err := uc.licenses.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Licenses.Delete(ctx, scope.EffectiveCompanyID, id); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionDelete, "license", l.ID, l.Name))
	})
}

func toLicenseResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:           l.ID,
		CompanyID:    l.CompanyID,
		AssetID:      l.AssetID,
		Name:         l.Name,
		Vendor:       l.Vendor,
		LicenseType:  l.LicenseType,
		MaxUsers:     l.MaxUsers,
		CurrentUsers: l.CurrentUsers,
		UsagePercent: l.UsagePercent(),
		PurchaseDate: l.PurchaseDate,
		ExpiryDate:   l.ExpiryDate,
		MonthlyCost:  l.MonthlyCost,
		AnnualCost:   l.AnnualCost,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
