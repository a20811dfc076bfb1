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

// MaintenanceUseCase reglas de negocio para registros de mantenimiento.
//
// El alta la puede hacer un técnico (es su trabajo diario); editar y borrar
// siguen requiriendo nivel admin.
type MaintenanceUseCase struct {
	maintenance repository.MaintenanceRepository
	assets      repository.AssetRepository
	tx          repository.TxRunner
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(maintenance repository.MaintenanceRepository, assets repository.AssetRepository, tx repository.TxRunner) *MaintenanceUseCase {
	return &MaintenanceUseCase{maintenance: maintenance, assets: assets, tx: tx}
}

// Create registra un mantenimiento sobre un activo de la empresa. El activo
// debe existir en el scope; un ID ajeno devuelve ErrNotFound.
func (uc *MaintenanceUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if err := scope.Authorize(domain.ActionCreateMaintenance); err != nil {
		return nil, err
	}
	mType := entity.MaintenanceType(in.Type)
	if in.AssetID == "" || !mType.Valid() || in.ScheduledDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	status := entity.MaintenanceStatus(in.Status)
	if in.Status == "" {
		status = entity.MaintScheduled
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	a, err := uc.assets.GetByID(ctx, scope.EffectiveCompanyID, in.AssetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	m := &entity.MaintenanceRecord{
		ID:            uuid.New().String(),
		AssetID:       in.AssetID,
		CompanyID:     scope.EffectiveCompanyID,
		Type:          mType,
		Cost:          in.Cost,
		ScheduledDate: in.ScheduledDate,
		CompletedDate: in.CompletedDate,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Maintenance.Create(ctx, m); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionCreate, "maintenance", m.ID, a.Name))
	})
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// GetByID obtiene un registro dentro del scope.
func (uc *MaintenanceUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.MaintenanceResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	m, err := uc.maintenance.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(m), nil
}

// List lista los mantenimientos de la empresa con paginación.
func (uc *MaintenanceUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.MaintenanceListResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.maintenance.ListByCompany(ctx, scope.EffectiveCompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return &dto.MaintenanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByAsset historial de mantenimiento de un activo.
func (uc *MaintenanceUseCase) ListByAsset(ctx context.Context, scope domain.Scope, assetID string) ([]dto.MaintenanceResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	a, err := uc.assets.GetByID(ctx, scope.EffectiveCompanyID, assetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.maintenance.ListByAsset(ctx, scope.EffectiveCompanyID, assetID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return items, nil
}

// Update actualización parcial del registro. Requiere nivel admin.
func (uc *MaintenanceUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return nil, err
	}
	m, err := uc.maintenance.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	if in.Type != nil {
		t := entity.MaintenanceType(*in.Type)
		if !t.Valid() {
			return nil, domain.ErrInvalidInput
		}
		m.Type = t
	}
	if in.Cost != nil {
		m.Cost = *in.Cost
	}
	if in.ScheduledDate != nil {
		m.ScheduledDate = *in.ScheduledDate
	}
	if in.CompletedDate != nil {
		m.CompletedDate = in.CompletedDate
	}
	if in.Status != nil {
		s := entity.MaintenanceStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		m.Status = s
	}
	m.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Maintenance.Update(ctx, m); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionUpdate, "maintenance", m.ID, string(m.Type)))
	})
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// Delete elimina el registro. Requiere nivel admin.
func (uc *MaintenanceUseCase) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return err
	}
	m, err := uc.maintenance.GetByID(ctx, scope.EffectiveCompanyID, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Maintenance.Delete(ctx, scope.EffectiveCompanyID, id); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionDelete, "maintenance", m.ID, string(m.Type)))
	})
}

func toMaintenanceResponse(m *entity.MaintenanceRecord) *dto.MaintenanceResponse {
	if m == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:            m.ID,
		AssetID:       m.AssetID,
		CompanyID:     m.CompanyID,
		Type:          string(m.Type),
		Cost:          m.Cost,
		ScheduledDate: m.ScheduledDate,
		CompletedDate: m.CompletedDate,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
