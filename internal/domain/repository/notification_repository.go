package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// NotificationRepository puerto de persistencia para Notification.
// Las lecturas son por destinatario dentro de la empresa.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, batch []*entity.Notification) error
	ListByRecipient(ctx context.Context, companyID, userID string, limit, offset int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, companyID, userID string) (int, error)
	// MarkRead marca como leída una notificación del destinatario; devuelve
	// false si no existe dentro de su scope.
	MarkRead(ctx context.Context, companyID, userID, id string) (bool, error)
}
