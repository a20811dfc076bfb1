package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// CompanyUseCase reglas de negocio para empresas y membresías.
type CompanyUseCase struct {
	companies   repository.CompanyRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
	tx          repository.TxRunner
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository, memberships repository.MembershipRepository, users repository.UserRepository, tx repository.TxRunner) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, memberships: memberships, users: users, tx: tx}
}

// Create da de alta una empresa adicional para un usuario existente, que queda
// como manager_owner de la nueva. Empresa + membresía + bitácora en una
// transacción.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	plan := entity.Plan(in.Plan)
	if in.Name == "" || !plan.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	limits := entity.LimitsFor(plan)
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Plan:         plan,
		MaxUsers:     limits.MaxUsers,
		MaxAssets:    limits.MaxAssets,
		IsActive:     true,
		RUC:          in.RUC,
		Cedula:       in.Cedula,
		Address:      in.Address,
		Phone:        in.Phone,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !company.ValidTaxID() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.companies.GetByTaxID(ctx, company.TaxID())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrTaxIDAlreadyExists
	}

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Companies.Create(ctx, company); err != nil {
			return err
		}
		if err := r.Memberships.Create(ctx, &entity.UserCompany{
			UserID:    userID,
			CompanyID: company.ID,
			Role:      entity.RoleManagerOwner,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return r.Activity.Append(ctx, &entity.ActivityLog{
			ID:         uuid.New().String(),
			CompanyID:  company.ID,
			UserID:     userID,
			Action:     entity.ActionCreate,
			EntityType: "company",
			EntityID:   company.ID,
			EntityName: company.Name,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene la empresa del scope.
func (uc *CompanyUseCase) GetByID(ctx context.Context, scope domain.Scope) (*dto.CompanyResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	c, err := uc.companies.GetByID(ctx, scope.EffectiveCompanyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(c), nil
}

// Update edita datos de la propia empresa. Requiere manager_owner. El plan y
// la activación no se tocan aquí: eso es terreno del super_admin.
func (uc *CompanyUseCase) Update(ctx context.Context, scope domain.Scope, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := scope.Authorize(domain.ActionManageCompany); err != nil {
		return nil, err
	}
	c, err := uc.companies.GetByID(ctx, scope.EffectiveCompanyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Address != "" {
		c.Address = in.Address
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.ContactEmail != "" {
		c.ContactEmail = in.ContactEmail
	}
	c.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Companies.Update(ctx, c); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionUpdate, "company", c.ID, c.Name))
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// ListMemberships devuelve las empresas a las que pertenece el usuario, con el
// rol de cada membresía. No requiere scope: es la pantalla de selección de
// empresa post-login.
func (uc *CompanyUseCase) ListMemberships(ctx context.Context, userID string) (*dto.MembershipListResponse, error) {
	memberships, err := uc.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		c, err := uc.companies.GetByID(ctx, m.CompanyID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}
		items = append(items, dto.MembershipResponse{
			CompanyID:   c.ID,
			CompanyName: c.Name,
			Role:        string(m.Role),
			IsActive:    c.IsActive,
		})
	}
	return &dto.MembershipListResponse{Items: items}, nil
}

// ListMembers lista los miembros de la empresa del scope.
func (uc *CompanyUseCase) ListMembers(ctx context.Context, scope domain.Scope) ([]dto.MemberResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	members, err := uc.memberships.ListMembers(ctx, scope.EffectiveCompanyID)
	if err != nil {
		return nil, err
	}
	return toMemberResponses(members), nil
}

// ListTechnicians lista los miembros con rol technician, para asignarlos a
// activos.
func (uc *CompanyUseCase) ListTechnicians(ctx context.Context, scope domain.Scope) ([]dto.MemberResponse, error) {
	if err := scope.Authorize(domain.ActionRead); err != nil {
		return nil, err
	}
	members, err := uc.memberships.ListMembersByRole(ctx, scope.EffectiveCompanyID, entity.RoleTechnician)
	if err != nil {
		return nil, err
	}
	return toMemberResponses(members), nil
}

// AddMember incorpora un usuario existente (por email) a la empresa del scope.
// El cupo de miembros lo fija MaxUsers del plan. Requiere manager_owner.
func (uc *CompanyUseCase) AddMember(ctx context.Context, scope domain.Scope, in dto.AddMemberRequest) (*dto.MemberResponse, error) {
	if err := scope.Authorize(domain.ActionManageMembers); err != nil {
		return nil, err
	}
	role := entity.Role(in.Role)
	switch role {
	case entity.RoleTechnicalAdmin, entity.RoleManagerOwner, entity.RoleTechnician:
	default:
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.memberships.Get(ctx, user.ID, scope.EffectiveCompanyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	company, err := uc.companies.GetByID(ctx, scope.EffectiveCompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.memberships.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if total >= company.MaxUsers {
		return nil, domain.ErrPlanLimitReached
	}

	now := time.Now()
	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Memberships.Create(ctx, &entity.UserCompany{
			UserID:    user.ID,
			CompanyID: company.ID,
			Role:      role,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionCreate, "membership", user.ID, user.Email))
	})
	if err != nil {
		return nil, err
	}
	return &dto.MemberResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(role),
	}, nil
}

// RemoveMember quita la membresía de un usuario en la empresa del scope.
// Quitarse a uno mismo es conflicto: dejaría la empresa sin quien la gestione.
func (uc *CompanyUseCase) RemoveMember(ctx context.Context, scope domain.Scope, userID string) error {
	if err := scope.Authorize(domain.ActionManageMembers); err != nil {
		return err
	}
	if userID == scope.ActingUserID {
		return domain.ErrConflict
	}
	m, err := uc.memberships.Get(ctx, userID, scope.EffectiveCompanyID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Memberships.Delete(ctx, userID, scope.EffectiveCompanyID); err != nil {
			return err
		}
		return r.Activity.Append(ctx, auditEntry(scope, entity.ActionDelete, "membership", userID, ""))
	})
}

func toMemberResponses(members []*entity.Member) []dto.MemberResponse {
	out := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, dto.MemberResponse{
			UserID:    m.UserID,
			Email:     m.Email,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Role:      string(m.Role),
		})
	}
	return out
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Plan:         string(c.Plan),
		MaxUsers:     c.MaxUsers,
		MaxAssets:    c.MaxAssets,
		IsActive:     c.IsActive,
		RUC:          c.RUC,
		Cedula:       c.Cedula,
		Address:      c.Address,
		Phone:        c.Phone,
		ContactEmail: c.ContactEmail,
		Limits:       entity.LimitsFor(c.Plan),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
