package entity

import "time"

// User representa un usuario del sistema. Puede pertenecer a varias empresas
// con roles distintos (ver UserCompany).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         Role // rol global por defecto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para mostrar.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
