package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que MembershipRepo implementa repository.MembershipRepository.
var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
type MembershipRepo struct {
	db Querier
}

// NewMembershipRepository construye el adaptador de persistencia para membresías.
func NewMembershipRepository(db Querier) *MembershipRepo {
	return &MembershipRepo{db: db}
}

// Create persiste una membresía usuario-empresa.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.UserCompany) error {
	query := `
		INSERT INTO user_companies (user_id, company_id, role, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, m.UserID, m.CompanyID, m.Role, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// Get obtiene la membresía de un usuario en una empresa. (nil, nil) si no existe.
func (r *MembershipRepo) Get(ctx context.Context, userID, companyID string) (*entity.UserCompany, error) {
	query := `
		SELECT user_id, company_id, role, created_at
		FROM user_companies WHERE user_id = $1 AND company_id = $2`
	var m entity.UserCompany
	err := r.db.QueryRow(ctx, query, userID, companyID).Scan(
		&m.UserID, &m.CompanyID, &m.Role, &m.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// ListByUser lista las membresías de un usuario.
func (r *MembershipRepo) ListByUser(ctx context.Context, userID string) ([]*entity.UserCompany, error) {
	query := `
		SELECT user_id, company_id, role, created_at
		FROM user_companies WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserCompany
	for rows.Next() {
		var m entity.UserCompany
		if err := rows.Scan(&m.UserID, &m.CompanyID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListMembers lista los miembros de una empresa (join con users).
func (r *MembershipRepo) ListMembers(ctx context.Context, companyID string) ([]*entity.Member, error) {
	query := `
		SELECT uc.user_id, u.email, u.first_name, u.last_name, uc.role
		FROM user_companies uc
		JOIN users u ON u.id = uc.user_id
		WHERE uc.company_id = $1
		ORDER BY u.first_name, u.last_name`
	return r.queryMembers(ctx, query, companyID)
}

// ListMembersByRole lista los miembros de una empresa con un rol dado.
func (r *MembershipRepo) ListMembersByRole(ctx context.Context, companyID string, role entity.Role) ([]*entity.Member, error) {
	query := `
		SELECT uc.user_id, u.email, u.first_name, u.last_name, uc.role
		FROM user_companies uc
		JOIN users u ON u.id = uc.user_id
		WHERE uc.company_id = $1 AND uc.role = $2
		ORDER BY u.first_name, u.last_name`
	return r.queryMembers(ctx, query, companyID, role)
}

func (r *MembershipRepo) queryMembers(ctx context.Context, query string, args ...any) ([]*entity.Member, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var list []*entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.UserID, &m.Email, &m.FirstName, &m.LastName, &m.Role); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los miembros de una empresa (límite de plan).
func (r *MembershipRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_companies WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

// Delete elimina una membresía.
func (r *MembershipRepo) Delete(ctx context.Context, userID, companyID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_companies WHERE user_id = $1 AND company_id = $2`, userID, companyID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	return nil
}
