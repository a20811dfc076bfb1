// Package alerts implementa el motor de alertas de vencimiento: clasifica los
// cuatro servicios de infraestructura de las aplicaciones (dominio, SSL,
// hosting, servidor) por urgencia y materializa notificaciones por destinatario.
package alerts

import "time"

// Urgency clasificación de un vencimiento por días restantes.
type Urgency int

const (
	// UrgencyNone vence a más de 30 días: no genera alerta.
	UrgencyNone Urgency = iota
	// UrgencyUpcoming vence entre 8 y 30 días.
	UrgencyUpcoming
	// UrgencyCritical vence dentro de 7 días (inclusive).
	UrgencyCritical
	// UrgencyExpired ya venció.
	UrgencyExpired
)

// String etiqueta estable para API y mensajes.
func (u Urgency) String() string {
	switch u {
	case UrgencyUpcoming:
		return "upcoming"
	case UrgencyCritical:
		return "critical"
	case UrgencyExpired:
		return "expired"
	}
	return "none"
}

// Classify clasifica una fecha de vencimiento relativa a now.
//
// Límites inclusivos: exactamente now+7d es critical, exactamente now+30d es
// upcoming. Esta función es la ÚNICA fuente de los umbrales: la usan tanto la
// generación de notificaciones persistidas como las alertas del dashboard,
// para que ambas rutas coincidan siempre.
func Classify(expiry, now time.Time) Urgency {
	switch {
	case expiry.Before(now):
		return UrgencyExpired
	case !expiry.After(now.AddDate(0, 0, 7)):
		return UrgencyCritical
	case !expiry.After(now.AddDate(0, 0, 30)):
		return UrgencyUpcoming
	default:
		return UrgencyNone
	}
}
