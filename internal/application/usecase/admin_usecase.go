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

// AdminUseCase operaciones de plataforma reservadas al super_admin: gestión
// global de tenants y modo soporte.
type AdminUseCase struct {
	companies repository.CompanyRepository
	support   repository.SupportRepository
	tx        repository.TxRunner
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(companies repository.CompanyRepository, support repository.SupportRepository, tx repository.TxRunner) *AdminUseCase {
	return &AdminUseCase{companies: companies, support: support, tx: tx}
}

// ListCompanies listado global de tenants.
func (uc *AdminUseCase) ListCompanies(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.AdminCompanyListResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.companies.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.AdminCompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateCompany cambia plan, activación o límites de un tenant. Al cambiar el
// plan los límites vuelven a los del plan nuevo; los punteros explícitos de la
// petición los sobreescriben después.
func (uc *AdminUseCase) UpdateCompany(ctx context.Context, scope domain.Scope, companyID string, in dto.AdminUpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	c, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Plan != nil {
		plan := entity.Plan(*in.Plan)
		if !plan.Valid() {
			return nil, domain.ErrInvalidInput
		}
		if plan != c.Plan {
			limits := entity.LimitsFor(plan)
			c.Plan = plan
			c.MaxUsers = limits.MaxUsers
			c.MaxAssets = limits.MaxAssets
		}
	}
	if in.MaxUsers != nil {
		if *in.MaxUsers < 1 {
			return nil, domain.ErrInvalidInput
		}
		c.MaxUsers = *in.MaxUsers
	}
	if in.MaxAssets != nil {
		if *in.MaxAssets < 1 {
			return nil, domain.ErrInvalidInput
		}
		c.MaxAssets = *in.MaxAssets
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Companies.Update(ctx, c); err != nil {
			return err
		}
		return r.Activity.Append(ctx, &entity.ActivityLog{
			ID:         uuid.New().String(),
			CompanyID:  c.ID,
			UserID:     scope.ActingUserID,
			Action:     entity.ActionUpdate,
			EntityType: "company",
			EntityID:   c.ID,
			EntityName: c.Name,
			CreatedAt:  time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// DeleteCompany elimina un tenant completo. El schema cascadea membresías,
// activos, contratos, licencias, notificaciones y bitácora; no queda rastro
// de auditoría porque la bitácora viaja con la empresa.
func (uc *AdminUseCase) DeleteCompany(ctx context.Context, scope domain.Scope, companyID string) error {
	if !scope.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	c, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.companies.Delete(ctx, companyID)
}

// EnterSupport abre (o reemplaza) la sesión de soporte del super_admin sobre
// una empresa. Mientras exista, toda resolución de scope del admin apunta a
// esa empresa. La entrada queda en la bitácora del tenant.
func (uc *AdminUseCase) EnterSupport(ctx context.Context, scope domain.Scope, companyID string) (*dto.SupportStatusResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	c, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.IsActive {
		return nil, domain.ErrCompanyInactive
	}

	now := time.Now()
	session := &entity.SupportSession{
		AdminUserID: scope.ActingUserID,
		CompanyID:   companyID,
		GrantedBy:   scope.ActingUserID,
		StartedAt:   now,
	}
	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Support.Upsert(ctx, session); err != nil {
			return err
		}
		return r.Activity.Append(ctx, &entity.ActivityLog{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			UserID:     scope.ActingUserID,
			Action:     entity.ActionSupportEnter,
			EntityType: "company",
			EntityID:   companyID,
			EntityName: c.Name,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.SupportStatusResponse{Active: true, CompanyID: companyID, StartedAt: &now}, nil
}

// ExitSupport cierra la sesión de soporte del admin. Sin sesión activa es
// ErrNotFound.
func (uc *AdminUseCase) ExitSupport(ctx context.Context, scope domain.Scope) error {
	if !scope.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	session, err := uc.support.Get(ctx, scope.ActingUserID)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Support.Delete(ctx, scope.ActingUserID); err != nil {
			return err
		}
		return r.Activity.Append(ctx, &entity.ActivityLog{
			ID:         uuid.New().String(),
			CompanyID:  session.CompanyID,
			UserID:     scope.ActingUserID,
			Action:     entity.ActionSupportExit,
			EntityType: "company",
			EntityID:   session.CompanyID,
			CreatedAt:  time.Now(),
		})
	})
}

// SupportStatus informa si el admin tiene una sesión de soporte activa.
func (uc *AdminUseCase) SupportStatus(ctx context.Context, scope domain.Scope) (*dto.SupportStatusResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	session, err := uc.support.Get(ctx, scope.ActingUserID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &dto.SupportStatusResponse{Active: false}, nil
	}
	started := session.StartedAt
	return &dto.SupportStatusResponse{Active: true, CompanyID: session.CompanyID, StartedAt: &started}, nil
}
