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

// AssetUseCase reglas de negocio para activos de TI.
type AssetUseCase struct {
	assets    repository.AssetRepository
	companies repository.CompanyRepository
	tx        repository.TxRunner
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(assets repository.AssetRepository, companies repository.CompanyRepository, tx repository.TxRunner) *AssetUseCase {
	return &AssetUseCase{assets: assets, companies: companies, tx: tx}
}

// Create da de alta un activo, aplicando el límite del plan. La mutación y su
// entrada de bitácora se confirman en la misma transacción.
func (uc *AssetUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	t := entity.AssetType(in.Type)
	if in.Name == "" || !t.Valid() {
		return nil, domain.ErrInvalidInput
	}
	status := entity.AssetStatus(in.Status)
	if in.Status == "" {
		status = entity.AssetActive
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
	total, err := uc.assets.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if total >= company.MaxAssets {
		return nil, domain.ErrPlanLimitReached
	}

	now := time.Now()
	a := &entity.Asset{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		Name:        in.Name,
		Type:        t,
		Status:      status,
		MonthlyCost: in.MonthlyCost,
		AnnualCost:  in.AnnualCost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t == entity.AssetApplication {
		apps, err := uc.assets.CountApplications(ctx, company.ID)
		if err != nil {
			return nil, err
		}
		if apps >= entity.LimitsFor(company.Plan).MaxApplications {
			return nil, domain.ErrPlanLimitReached
		}
		appType := entity.ApplicationType(in.ApplicationType)
		if in.ApplicationType == "" {
			appType = entity.AppSaaS
		}
		if !appType.Valid() {
			return nil, domain.ErrInvalidInput
		}
		a.ApplicationType = appType
		a.DomainCost = in.DomainCost
		a.DomainExpiry = in.DomainExpiry
		a.SSLCost = in.SSLCost
		a.SSLExpiry = in.SSLExpiry
		a.HostingCost = in.HostingCost
		a.HostingExpiry = in.HostingExpiry
		a.ServerCost = in.ServerCost
		a.ServerExpiry = in.ServerExpiry
		a.AssignedTechnicianID = in.AssignedTechnicianID
	}

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Assets.Create(ctx, a); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionCreate, "asset", a.ID, a.Name))
	})
	if err != nil {
		return nil, err
	}
	return toAssetResponse(a), nil
}

// GetByID obtiene un activo dentro del scope. Un ID de otra empresa devuelve
// ErrNotFound, nunca ErrForbidden.
func (uc *AssetUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.AssetResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	a, err := uc.assets.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toAssetResponse(a), nil
}

// List lista los activos de la empresa con paginación.
func (uc *AssetUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.AssetListResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.assets.ListByCompany(ctx, scope.EffectiveCompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian
// y updated_at se refresca siempre.
func (uc *AssetUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	a, err := uc.assets.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	// Los campos de infraestructura solo aplican a activos de tipo application.
	if a.Type != entity.AssetApplication && hasApplicationFields(in) {
		return nil, domain.ErrInvalidInput
	}

	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Status != nil {
		s := entity.AssetStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		a.Status = s
	}
	if in.MonthlyCost != nil {
		a.MonthlyCost = *in.MonthlyCost
	}
	if in.AnnualCost != nil {
		a.AnnualCost = *in.AnnualCost
	}
	if in.ApplicationType != nil {
		t := entity.ApplicationType(*in.ApplicationType)
		if !t.Valid() {
			return nil, domain.ErrInvalidInput
		}
		a.ApplicationType = t
	}
	if in.DomainCost != nil {
		a.DomainCost = *in.DomainCost
	}
	if in.DomainExpiry != nil {
		a.DomainExpiry = in.DomainExpiry
	}
	if in.SSLCost != nil {
		a.SSLCost = *in.SSLCost
	}
	if in.SSLExpiry != nil {
		a.SSLExpiry = in.SSLExpiry
	}
	if in.HostingCost != nil {
		a.HostingCost = *in.HostingCost
	}
	if in.HostingExpiry != nil {
		a.HostingExpiry = in.HostingExpiry
	}
	if in.ServerCost != nil {
		a.ServerCost = *in.ServerCost
	}
	if in.ServerExpiry != nil {
		a.ServerExpiry = in.ServerExpiry
	}
	if in.AssignedTechnicianID != nil {
		a.AssignedTechnicianID = in.AssignedTechnicianID
	}
	a.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Assets.Update(ctx, a); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionUpdate, "asset", a.ID, a.Name))
	})
	if err != nil {
		return nil, err
	}
	return toAssetResponse(a), nil
}

// Delete elimina el activo (hard delete). El schema cascadea sus
// mantenimientos y anula la back-reference de sus licencias.
func (uc *AssetUseCase) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return err
	}
	a, err := uc.assets.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Assets.Delete(ctx, scope.EffectiveCompanyID, id); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionDelete, "asset", a.ID, a.Name))
	})
}

func hasApplicationFields(in dto.UpdateAssetRequest) bool {
	return in.ApplicationType != nil || in.AssignedTechnicianID != nil ||
		in.DomainCost != nil || in.DomainExpiry != nil ||
		in.SSLCost != nil || in.SSLExpiry != nil ||
		in.HostingCost != nil || in.HostingExpiry != nil ||
		in.ServerCost != nil || in.ServerExpiry != nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:                   a.ID,
		CompanyID:            a.CompanyID,
		Name:                 a.Name,
		Type:                 string(a.Type),
		Status:               string(a.Status),
		MonthlyCost:          a.MonthlyCost,
		AnnualCost:           a.AnnualCost,
		ApplicationType:      string(a.ApplicationType),
		DomainCost:           a.DomainCost,
		DomainExpiry:         a.DomainExpiry,
		SSLCost:              a.SSLCost,
		SSLExpiry:            a.SSLExpiry,
		HostingCost:          a.HostingCost,
		HostingExpiry:        a.HostingExpiry,
		ServerCost:           a.ServerCost,
		ServerExpiry:         a.ServerExpiry,
		AssignedTechnicianID: a.AssignedTechnicianID,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}
