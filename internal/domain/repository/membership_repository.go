package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// MembershipRepository puerto de persistencia para user_companies.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.UserCompany) error
	Get(ctx context.Context, userID, companyID string) (*entity.UserCompany, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.UserCompany, error)
	ListMembers(ctx context.Context, companyID string) ([]*entity.Member, error)
	ListMembersByRole(ctx context.Context, companyID string, role entity.Role) ([]*entity.Member, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, userID, companyID string) error
}
