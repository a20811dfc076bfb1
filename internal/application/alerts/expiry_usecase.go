package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ExpiryUseCase genera y consulta alertas de vencimiento de servicios de
// infraestructura de los activos tipo application.
type ExpiryUseCase struct {
	assets      repository.AssetRepository
	memberships repository.MembershipRepository
	tx          repository.TxRunner
	now         func() time.Time
}

// NewExpiryUseCase construye el caso de uso.
func NewExpiryUseCase(assets repository.AssetRepository, memberships repository.MembershipRepository, tx repository.TxRunner) *ExpiryUseCase {
	return &ExpiryUseCase{assets: assets, memberships: memberships, tx: tx, now: time.Now}
}

// Generate corre el motor para la empresa del scope y persiste las
// notificaciones. Devuelve cuántas se crearon.
func (uc *ExpiryUseCase) Generate(ctx context.Context, scope domain.Scope) (int, error) {
	if err := scope.Authorize(domain.ActionWriteEntities); err != nil {
		return 0, err
	}
	return uc.GenerateForCompany(ctx, scope.EffectiveCompanyID)
}

// GenerateForCompany corre el motor para una empresa sin chequeo de rol.
// Lo usa el scheduler interno; la ruta HTTP pasa por Generate.
//
// Cada invocación vuelve a insertar notificaciones para los servicios que
// sigan venciendo: no hay guarda de idempotencia entre corridas (decisión de
// producto pendiente); dentro de UNA corrida cada terna
// (destinatario, activo, servicio) produce a lo sumo una fila.
func (uc *ExpiryUseCase) GenerateForCompany(ctx context.Context, companyID string) (int, error) {
	now := uc.now()

	apps, err := uc.assets.ListApplications(ctx, companyID)
	if err != nil {
		return 0, fmt.Errorf("alertas: listar aplicaciones: %w", err)
	}
	members, err := uc.memberships.ListMembers(ctx, companyID)
	if err != nil {
		return 0, fmt.Errorf("alertas: listar miembros: %w", err)
	}
	var adminTier []string
	for _, m := range members {
		if m.Role.IsAdminTier() {
			adminTier = append(adminTier, m.UserID)
		}
	}

	var batch []*entity.Notification
	seen := map[string]bool{} // destinatario|activo|servicio

	for _, a := range apps {
		for _, svc := range entity.InfraServices() {
			exp := a.ServiceExpiry(svc)
			if exp == nil {
				continue
			}
			urgency := Classify(*exp, now)
			if urgency == UrgencyNone {
				continue
			}

			// Destinatarios: técnico asignado + miembros de nivel admin,
			// sin duplicar al técnico cuando también es admin.
			recipients := make([]string, 0, len(adminTier)+1)
			if a.AssignedTechnicianID != nil && *a.AssignedTechnicianID != "" {
				recipients = append(recipients, *a.AssignedTechnicianID)
			}
			for _, adminID := range adminTier {
				if a.AssignedTechnicianID != nil && adminID == *a.AssignedTechnicianID {
					continue
				}
				recipients = append(recipients, adminID)
			}

			for _, userID := range recipients {
				key := userID + "|" + a.ID + "|" + string(svc)
				if seen[key] {
					continue
				}
				seen[key] = true
				batch = append(batch, &entity.Notification{
					ID:         uuid.New().String(),
					CompanyID:  companyID,
					UserID:     userID,
					Title:      alertTitle(svc, urgency, a.Name),
					Message:    alertMessage(svc, urgency, *exp, now),
					Type:       entity.NotificationExpiryAlert,
					EntityType: "asset",
					EntityID:   a.ID,
					IsRead:     false,
					CreatedAt:  now,
				})
			}
		}
	}

	if len(batch) == 0 {
		return 0, nil
	}
	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		return r.Notifications.CreateBatch(ctx, batch)
	})
	if err != nil {
		return 0, fmt.Errorf("alertas: persistir notificaciones: %w", err)
	}
	return len(batch), nil
}

// DisplayAlerts clasifica al vuelo los vencimientos para el dashboard, sin
// tocar las notificaciones persistidas. Usa los mismos umbrales (Classify).
func (uc *ExpiryUseCase) DisplayAlerts(ctx context.Context, scope domain.Scope) ([]dto.ExpiryAlertDTO, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	now := uc.now()

	apps, err := uc.assets.ListApplications(ctx, scope.EffectiveCompanyID)
	if err != nil {
		return nil, fmt.Errorf("alertas dashboard: listar aplicaciones: %w", err)
	}

	out := []dto.ExpiryAlertDTO{}
	for _, a := range apps {
		for _, svc := range entity.InfraServices() {
			exp := a.ServiceExpiry(svc)
			if exp == nil {
				continue
			}
			urgency := Classify(*exp, now)
			if urgency == UrgencyNone {
				continue
			}
			out = append(out, dto.ExpiryAlertDTO{
				AssetID:    a.ID,
				AssetName:  a.Name,
				Service:    string(svc),
				ExpiryDate: *exp,
				Urgency:    urgency.String(),
				DaysLeft:   int(exp.Sub(now).Hours() / 24),
			})
		}
	}
	return out, nil
}

func serviceLabel(svc entity.InfraService) string {
	switch svc {
	case entity.ServiceDomain:
		return "dominio"
	case entity.ServiceSSL:
		return "certificado SSL"
	case entity.ServiceHosting:
		return "hosting"
	case entity.ServiceServer:
		return "servidor"
	}
	return string(svc)
}

func alertTitle(svc entity.InfraService, u Urgency, assetName string) string {
	switch u {
	case UrgencyExpired:
		return fmt.Sprintf("Venció el %s de %s", serviceLabel(svc), assetName)
	case UrgencyCritical:
		return fmt.Sprintf("El %s de %s vence esta semana", serviceLabel(svc), assetName)
	default:
		return fmt.Sprintf("El %s de %s vence pronto", serviceLabel(svc), assetName)
	}
}

func alertMessage(svc entity.InfraService, u Urgency, expiry, now time.Time) string {
	fecha := expiry.Format("02/01/2006")
	if u == UrgencyExpired {
		return fmt.Sprintf("El %s venció el %s. Renueve el servicio para evitar interrupciones.", serviceLabel(svc), fecha)
	}
	days := int(expiry.Sub(now).Hours() / 24)
	return fmt.Sprintf("El %s vence el %s (%d días). Programe la renovación.", serviceLabel(svc), fecha, days)
}
