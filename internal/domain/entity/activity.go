package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionRegister     = "register"
	ActionSupportEnter = "support_enter"
	ActionSupportExit  = "support_exit"
)

// ActivityLog entrada inmutable de auditoría. Solo se inserta (nunca se
// actualiza ni borra) y siempre dentro de la misma transacción que la
// mutación que la origina.
type ActivityLog struct {
	ID         string
	CompanyID  string
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	EntityName string
	CreatedAt  time.Time
}
