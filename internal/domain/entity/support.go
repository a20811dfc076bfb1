package entity

import "time"

// SupportSession elevación temporal de un super_admin al scope de una empresa
// sin membresía. Mientras exista la fila, toda resolución de "en qué empresa
// estoy" para ese admin apunta a CompanyID. Terminable de forma independiente.
type SupportSession struct {
	AdminUserID string // un super_admin tiene a lo sumo una sesión de soporte
	CompanyID   string
	GrantedBy   string
	StartedAt   time.Time
}
