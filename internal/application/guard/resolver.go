// Package guard resuelve el scope de tenant de cada petición: qué empresa es
// la efectiva y con qué rol actúa el usuario dentro de ella.
package guard

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Resolver construye el domain.Scope de una petición a partir de la identidad
// autenticada, la membresía y la sesión de soporte (si existe).
type Resolver struct {
	memberships repository.MembershipRepository
	support     repository.SupportRepository
}

// NewResolver construye el resolver con sus puertos.
func NewResolver(memberships repository.MembershipRepository, support repository.SupportRepository) *Resolver {
	return &Resolver{memberships: memberships, support: support}
}

// Resolve determina el scope efectivo.
//
// Orden de resolución:
//  1. super_admin con sesión de soporte activa → la empresa de la sesión,
//     ignorando la solicitada (el modo soporte redirige TODA resolución).
//  2. super_admin sin sesión → la empresa solicitada (alcance global).
//  3. resto → se exige membresía (userID, companyID); sin ella, ErrForbidden.
//     Nunca se re-escopea en silencio a otra empresa.
func (r *Resolver) Resolve(ctx context.Context, userID string, globalRole entity.Role, requestedCompanyID string) (domain.Scope, error) {
	scope := domain.Scope{ActingUserID: userID, GlobalRole: globalRole}

	if globalRole == entity.RoleSuperAdmin {
		sess, err := r.support.Get(ctx, userID)
		if err != nil {
			return domain.Scope{}, fmt.Errorf("resolver scope: sesión de soporte: %w", err)
		}
		if sess != nil {
			scope.EffectiveCompanyID = sess.CompanyID
			scope.IsSupportOverride = true
			return scope, nil
		}
		scope.EffectiveCompanyID = requestedCompanyID
		return scope, nil
	}

	if requestedCompanyID == "" {
		return domain.Scope{}, domain.ErrForbidden
	}
	m, err := r.memberships.Get(ctx, userID, requestedCompanyID)
	if err != nil {
		return domain.Scope{}, fmt.Errorf("resolver scope: membresía: %w", err)
	}
	if m == nil {
		return domain.Scope{}, domain.ErrForbidden
	}
	scope.EffectiveCompanyID = requestedCompanyID
	scope.CompanyRole = m.Role
	return scope, nil
}
