package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// NotificationUseCase consultas de la bandeja de notificaciones. Cada usuario
// ve solo las suyas dentro de la empresa del scope.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List lista las notificaciones del actor en la empresa del scope.
func (uc *NotificationUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.notifications.ListByRecipient(ctx, scope.EffectiveCompanyID, scope.ActingUserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UnreadCount cantidad de notificaciones no leídas del actor.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, scope domain.Scope) (*dto.UnreadCountResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	n, err := uc.notifications.CountUnread(ctx, scope.EffectiveCompanyID, scope.ActingUserID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: n}, nil
}

// MarkRead marca como leída una notificación del actor. Una notificación de
// otro usuario u otra empresa es ErrNotFound.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, scope domain.Scope, id string) error {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return err
	}
	ok, err := uc.notifications.MarkRead(ctx, scope.EffectiveCompanyID, scope.ActingUserID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:         n.ID,
		CompanyID:  n.CompanyID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}
