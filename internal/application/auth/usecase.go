package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro atómico, login y perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	tx          repository.TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, tx repository.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register registra empresa + usuario propietario + membresía en UNA
// transacción: o se crean los tres o ninguno. El usuario queda como
// manager_owner; los límites iniciales salen de la tabla del plan.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	plan := entity.Plan(in.Plan)
	if in.Email == "" || in.Password == "" || in.CompanyName == "" || !plan.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	limits := entity.LimitsFor(plan)
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.CompanyName,
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
	// pyme exige RUC, professional exige cédula; nunca ambos.
	if !company.ValidTaxID() {
		return nil, domain.ErrInvalidInput
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, err := uc.companyRepo.GetByTaxID(ctx, company.TaxID()); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrTaxIDAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleManagerOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func(r repository.Atomic) error {
		if err := r.Users.Create(ctx, user); err != nil {
			return err
		}
		if err := r.Companies.Create(ctx, company); err != nil {
			return err
		}
		if err := r.Memberships.Create(ctx, &entity.UserCompany{
			UserID:    user.ID,
			CompanyID: company.ID,
			Role:      entity.RoleManagerOwner,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return r.Activity.Append(ctx, &entity.ActivityLog{
			ID:         uuid.New().String(),
			CompanyID:  company.ID,
			UserID:     user.ID,
			Action:     entity.ActionRegister,
			EntityType: "company",
			EntityID:   company.ID,
			EntityName: company.Name,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.FullName(), string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Company: *toCompanyResponse(company),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized // no revelar si el email existe
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.FullName(), string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CurrentUser devuelve el perfil del usuario autenticado (sin hash).
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualización parcial del perfil propio (nombre y apellido).
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FirstName != nil {
		if *in.FirstName == "" {
			return nil, domain.ErrInvalidInput
		}
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// toCompanyResponse mapea la entidad al DTO, incluyendo los límites del plan.
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
