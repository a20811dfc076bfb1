package entity

import "time"

// Tipos de notificación.
const (
	NotificationExpiryAlert = "expiry_alert"
)

// Notification aviso persistido para un destinatario. Las crea únicamente el
// motor de alertas de vencimiento; después solo muta IsRead.
type Notification struct {
	ID         string
	CompanyID  string
	UserID     string // destinatario
	Title      string
	Message    string
	Type       string
	EntityType string
	EntityID   string
	IsRead     bool
	CreatedAt  time.Time
}
