package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NotificationListResponse lista paginada de notificaciones del destinatario.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// UnreadCountResponse respuesta de GET /api/notifications/unread-count/:companyId.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// GenerateAlertsResponse resultado de una corrida del motor de alertas.
type GenerateAlertsResponse struct {
	Created int `json:"created"`
}
