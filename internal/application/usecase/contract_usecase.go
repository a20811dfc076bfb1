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

// ContractUseCase reglas de negocio para contratos con proveedores.
type ContractUseCase struct {
	contracts repository.ContractRepository
	companies repository.CompanyRepository
	tx        repository.TxRunner
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(contracts repository.ContractRepository, companies repository.CompanyRepository, tx repository.TxRunner) *ContractUseCase {
	return &ContractUseCase{contracts: contracts, companies: companies, tx: tx}
}

// Create registra un contrato, aplicando el límite del plan. La mutación y su
// entrada de bitácora se confirman en la misma transacción.
func (uc *ContractUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Vendor == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	status := entity.ContractStatus(in.Status)
	if in.Status == "" {
		status = entity.ContractActive
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
	total, err := uc.contracts.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if total >= entity.LimitsFor(company.Plan).MaxContracts {
		return nil, domain.ErrPlanLimitReached
	}

	now := time.Now()
	c := &entity.Contract{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Name:         in.Name,
		Vendor:       in.Vendor,
		ContractType: in.ContractType,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		MonthlyCost:  in.MonthlyCost,
		AnnualCost:   in.AnnualCost,
		Status:       status,
		AutoRenewal:  in.AutoRenewal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Contracts.Create(ctx, c); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionCreate, "contract", c.ID, c.Name))
	})
	if err != nil {
		return nil, err
	}
	return toContractResponse(c, now), nil
}

// GetByID obtiene un contrato dentro del scope. Un ID de otra empresa devuelve
// ErrNotFound, nunca ErrForbidden.
func (uc *ContractUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.ContractResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	c, err := uc.contracts.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContractResponse(c, time.Now()), nil
}

// List lista los contratos de la empresa con paginación.
func (uc *ContractUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.ContractListResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.contracts.ListByCompany(ctx, scope.EffectiveCompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractResponse(c, now))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualización parcial del contrato.
func (uc *ContractUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	c, err := uc.contracts.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Vendor != nil {
		c.Vendor = *in.Vendor
	}
	if in.ContractType != nil {
		c.ContractType = *in.ContractType
	}
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = *in.EndDate
	}
	if in.MonthlyCost != nil {
		c.MonthlyCost = *in.MonthlyCost
	}
	if in.AnnualCost != nil {
		c.AnnualCost = *in.AnnualCost
	}
	if in.Status != nil {
		s := entity.ContractStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		c.Status = s
	}
	if in.AutoRenewal != nil {
		c.AutoRenewal = *in.AutoRenewal
	}
	if c.EndDate.Before(c.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	c.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Contracts.Update(ctx, c); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionUpdate, "contract", c.ID, c.Name))
	})
	if err != nil {
		return nil, err
	}
	return toContractResponse(c, c.UpdatedAt), nil
}

// Delete elimina el contrato.
func (uc *ContractUseCase) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return err
	}
	c, err := uc.contracts.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Contracts.Delete(ctx, scope.EffectiveCompanyID, id); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionDelete, "contract", c.ID, c.Name))
	})
}

func toContractResponse(c *entity.Contract, now time.Time) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		Vendor:        c.Vendor,
		ContractType:  c.ContractType,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		MonthlyCost:   c.MonthlyCost,
		AnnualCost:    c.AnnualCost,
		Status:        string(c.Status),
		DerivedStatus: string(c.DerivedStatus(now)),
		AutoRenewal:   c.AutoRenewal,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
