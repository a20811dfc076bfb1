package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// auditEntry arma la entrada de bitácora de una mutación. Siempre se inserta
// en la misma transacción que la mutación (ver repository.TxRunner).
func auditEntry(scope domain.Scope, action, entityType, entityID, entityName string) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:         uuid.New().String(),
		CompanyID:  scope.EffectiveCompanyID,
		UserID:     scope.ActingUserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		CreatedAt:  time.Now(),
	}
}
