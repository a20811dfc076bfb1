package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que NotificationRepo implementa repository.NotificationRepository.
var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	db Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(db Querier) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateBatch inserta un lote de notificaciones (una corrida del motor de alertas).
func (r *NotificationRepo) CreateBatch(ctx context.Context, batch []*entity.Notification) error {
	query := `
		INSERT INTO notifications (id, company_id, user_id, title, message, type, entity_type, entity_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, n := range batch {
		_, err := r.db.Exec(ctx, query,
			n.ID, n.CompanyID, n.UserID, n.Title, n.Message, n.Type,
			n.EntityType, n.EntityID, n.IsRead, n.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
	}
	return nil
}

// ListByRecipient lista las notificaciones del destinatario, más recientes primero.
func (r *NotificationRepo) ListByRecipient(ctx context.Context, companyID, userID string, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, company_id, user_id, title, message, type, entity_type, entity_id, is_read, created_at
		FROM notifications WHERE company_id = $1 AND user_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, companyID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.CompanyID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.EntityType, &n.EntityID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// CountUnread cantidad de no leídas del destinatario.
func (r *NotificationRepo) CountUnread(ctx context.Context, companyID, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE company_id = $1 AND user_id = $2 AND is_read = false`,
		companyID, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkRead marca como leída una notificación del destinatario; devuelve false
// si no existe dentro de su scope.
func (r *NotificationRepo) MarkRead(ctx context.Context, companyID, userID, id string) (bool, error) {
	cmd, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE company_id = $1 AND user_id = $2 AND id = $3`,
		companyID, userID, id,
	)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
