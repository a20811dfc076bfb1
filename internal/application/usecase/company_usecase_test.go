package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

type memCompanies struct {
	byID map[string]*entity.Company
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return m.byID[id], nil
}
func (m *memCompanies) GetByTaxID(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) List(context.Context, int, int) ([]*entity.Company, error) {
	return nil, nil
}
func (m *memCompanies) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memMemberships struct {
	rows []*entity.UserCompany
}

func (m *memMemberships) Create(_ context.Context, uc *entity.UserCompany) error {
	m.rows = append(m.rows, uc)
	return nil
}
func (m *memMemberships) Get(_ context.Context, userID, companyID string) (*entity.UserCompany, error) {
	for _, r := range m.rows {
		if r.UserID == userID && r.CompanyID == companyID {
			return r, nil
		}
	}
	return nil, nil
}
func (m *memMemberships) ListByUser(context.Context, string) ([]*entity.UserCompany, error) {
	return nil, nil
}
func (m *memMemberships) ListMembers(context.Context, string) ([]*entity.Member, error) {
	return nil, nil
}
func (m *memMemberships) ListMembersByRole(context.Context, string, entity.Role) ([]*entity.Member, error) {
	return nil, nil
}
func (m *memMemberships) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, r := range m.rows {
		if r.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
func (m *memMemberships) Delete(_ context.Context, userID, companyID string) error {
	out := m.rows[:0]
	for _, r := range m.rows {
		if r.UserID != userID || r.CompanyID != companyID {
			out = append(out, r)
		}
	}
	m.rows = out
	return nil
}

type stubUsers struct {
	byEmail map[string]*entity.User
}

func (s *stubUsers) Create(_ context.Context, u *entity.User) error {
	s.byEmail[u.Email] = u
	return nil
}
func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.byEmail[email], nil
}
func (s *stubUsers) Update(context.Context, *entity.User) error { return nil }

type memberTx struct {
	memberships *memMemberships
	activity    *memActivity
}

func (s *memberTx) Run(_ context.Context, fn func(repository.Atomic) error) error {
	return fn(repository.Atomic{Memberships: s.memberships, Activity: s.activity})
}

func ownerScope() domain.Scope {
	return domain.Scope{
		ActingUserID:       "owner-1",
		GlobalRole:         entity.RoleManagerOwner,
		EffectiveCompanyID: "c1",
		CompanyRole:        entity.RoleManagerOwner,
	}
}

func buildCompanyUC(maxUsers int) (*usecase.CompanyUseCase, *memMemberships, *memActivity) {
	companies := &memCompanies{byID: map[string]*entity.Company{
		"c1": {ID: "c1", Name: "Acme", Plan: entity.PlanPyme, MaxUsers: maxUsers, MaxAssets: 500, IsActive: true, RUC: "1790012345001"},
	}}
	memberships := &memMemberships{rows: []*entity.UserCompany{
		{UserID: "owner-1", CompanyID: "c1", Role: entity.RoleManagerOwner, CreatedAt: time.Now()},
	}}
	users := &stubUsers{byEmail: map[string]*entity.User{
		"ana@acme.ec": {ID: "u-ana", Email: "ana@acme.ec", FirstName: "Ana", LastName: "Loja", Role: entity.RoleTechnician},
	}}
	activity := &memActivity{}
	uc := usecase.NewCompanyUseCase(companies, memberships, users, &memberTx{memberships: memberships, activity: activity})
	return uc, memberships, activity
}

// ──────────────────────────────────────────────────────────────────────────────
// AddMember
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMember_CreaMembresiaYBitacora(t *testing.T) {
	uc, memberships, activity := buildCompanyUC(10)

	out, err := uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "ana@acme.ec",
		Role:  "technician",
	})
	require.NoError(t, err)

	assert.Equal(t, "u-ana", out.UserID)
	assert.Equal(t, "technician", out.Role)
	require.Len(t, memberships.rows, 2)
	assert.Equal(t, entity.RoleTechnician, memberships.rows[1].Role)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, entity.ActionCreate, activity.entries[0].Action)
	assert.Equal(t, "membership", activity.entries[0].EntityType)
}

func TestAddMember_CupoDelPlan(t *testing.T) {
	uc, _, _ := buildCompanyUC(1) // el owner ya ocupa el único cupo

	_, err := uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "ana@acme.ec",
		Role:  "technician",
	})
	assert.ErrorIs(t, err, domain.ErrPlanLimitReached,
		"MaxUsers de la empresa limita las membresías")
}

func TestAddMember_EmailInexistente(t *testing.T) {
	uc, _, _ := buildCompanyUC(10)

	_, err := uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "nadie@ninguna.ec",
		Role:  "technician",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAddMember_YaEsMiembro_Conflicto(t *testing.T) {
	uc, _, _ := buildCompanyUC(10)

	_, err := uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "ana@acme.ec", Role: "technician",
	})
	require.NoError(t, err)

	_, err = uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "ana@acme.ec", Role: "technical_admin",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddMember_RolSuperAdmin_Invalido(t *testing.T) {
	uc, _, _ := buildCompanyUC(10)

	_, err := uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "ana@acme.ec",
		Role:  "super_admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"super_admin es un rol global, no se asigna por membresía")
}

func TestAddMember_TechnicalAdminProhibido(t *testing.T) {
	uc, _, _ := buildCompanyUC(10)
	scope := ownerScope()
	scope.CompanyRole = entity.RoleTechnicalAdmin

	_, err := uc.AddMember(context.Background(), scope, dto.AddMemberRequest{
		Email: "ana@acme.ec", Role: "technician",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"gestionar miembros exige manager_owner")
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveMember
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveMember_EliminaYDejaBitacora(t *testing.T) {
	uc, memberships, activity := buildCompanyUC(10)
	_, err := uc.AddMember(context.Background(), ownerScope(), dto.AddMemberRequest{
		Email: "ana@acme.ec", Role: "technician",
	})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveMember(context.Background(), ownerScope(), "u-ana"))

	require.Len(t, memberships.rows, 1, "solo queda el owner")
	require.Len(t, activity.entries, 2)
	assert.Equal(t, entity.ActionDelete, activity.entries[1].Action)
}

func TestRemoveMember_AUnoMismo_Conflicto(t *testing.T) {
	uc, _, _ := buildCompanyUC(10)

	err := uc.RemoveMember(context.Background(), ownerScope(), "owner-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRemoveMember_NoMiembro_NotFound(t *testing.T) {
	uc, _, _ := buildCompanyUC(10)

	err := uc.RemoveMember(context.Background(), ownerScope(), "u-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
