package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner simula rollback descartando lo escrito si
// fn devuelve error.
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	byEmail map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}
func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}
func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}

type memCompanies struct {
	byID map[string]*entity.Company
}

func newMemCompanies() *memCompanies { return &memCompanies{byID: map[string]*entity.Company{}} }

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return m.byID[id], nil
}
func (m *memCompanies) GetByTaxID(_ context.Context, taxID string) (*entity.Company, error) {
	for _, c := range m.byID {
		if c.RUC == taxID || c.Cedula == taxID {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCompanies) Update(context.Context, *entity.Company) error { return nil }
func (m *memCompanies) List(context.Context, int, int) ([]*entity.Company, error) {
	return nil, nil
}
func (m *memCompanies) Delete(context.Context, string) error { return nil }

type memMemberships struct {
	rows []*entity.UserCompany
}

func (m *memMemberships) Create(_ context.Context, uc *entity.UserCompany) error {
	m.rows = append(m.rows, uc)
	return nil
}
func (m *memMemberships) Get(context.Context, string, string) (*entity.UserCompany, error) {
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
func (m *memMemberships) CountByCompany(context.Context, string) (int, error) { return 0, nil }
func (m *memMemberships) Delete(context.Context, string, string) error        { return nil }

type memActivity struct {
	entries []*entity.ActivityLog
}

func (m *memActivity) Append(_ context.Context, e *entity.ActivityLog) error {
	m.entries = append(m.entries, e)
	return nil
}
func (m *memActivity) ListRecent(context.Context, string, int) ([]*entity.ActivityLog, error) {
	return m.entries, nil
}

// failingActivity fuerza el fallo del último paso de la transacción para
// verificar que nada de lo anterior queda visible.
type failingActivity struct{}

func (failingActivity) Append(context.Context, *entity.ActivityLog) error {
	return errors.New("disco lleno")
}
func (failingActivity) ListRecent(context.Context, string, int) ([]*entity.ActivityLog, error) {
	return nil, nil
}

type txFixture struct {
	users       *memUsers
	companies   *memCompanies
	memberships *memMemberships
	activity    repository.ActivityRepository
}

// Run simula la transacción: escribe sobre copias y solo publica si fn
// termina sin error.
func (f *txFixture) Run(_ context.Context, fn func(repository.Atomic) error) error {
	stagedUsers := newMemUsers()
	stagedCompanies := newMemCompanies()
	stagedMemberships := &memMemberships{}
	staged := repository.Atomic{
		Users:       stagedUsers,
		Companies:   stagedCompanies,
		Memberships: stagedMemberships,
		Activity:    f.activity,
	}
	if err := fn(staged); err != nil {
		return err
	}
	for k, v := range stagedUsers.byEmail {
		f.users.byEmail[k] = v
	}
	for k, v := range stagedCompanies.byID {
		f.companies.byID[k] = v
	}
	f.memberships.rows = append(f.memberships.rows, stagedMemberships.rows...)
	return nil
}

func buildAuthUC(activity repository.ActivityRepository) (*auth.AuthUseCase, *txFixture) {
	fx := &txFixture{
		users:       newMemUsers(),
		companies:   newMemCompanies(),
		memberships: &memMemberships{},
		activity:    activity,
	}
	uc := auth.NewAuthUseCase(fx.users, fx.companies, fx, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "activos-api-test",
	})
	return uc, fx
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       "dueno@acme.ec",
		Password:    "clave-segura-123",
		FirstName:   "María",
		LastName:    "Paz",
		CompanyName: "Acme S.A.",
		Plan:        "pyme",
		RUC:         "1790012345001",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioEmpresaYMembresia(t *testing.T) {
	activity := &memActivity{}
	uc, fx := buildAuthUC(activity)

	out, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, string(entity.RoleManagerOwner), out.User.Role,
		"quien registra queda como manager_owner")
	assert.Equal(t, "pyme", out.Company.Plan)
	assert.Equal(t, 10, out.Company.MaxUsers, "los límites iniciales salen de la tabla del plan")
	assert.Equal(t, 500, out.Company.MaxAssets)

	assert.Len(t, fx.users.byEmail, 1)
	assert.Len(t, fx.companies.byID, 1)
	require.Len(t, fx.memberships.rows, 1)
	assert.Equal(t, entity.RoleManagerOwner, fx.memberships.rows[0].Role)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, entity.ActionRegister, activity.entries[0].Action)
}

func TestRegister_FalloEnBitacora_NoPublicaNada(t *testing.T) {
	uc, fx := buildAuthUC(failingActivity{})

	_, err := uc.Register(context.Background(), validRegister())
	require.Error(t, err)

	assert.Empty(t, fx.users.byEmail, "si falla un paso no debe quedar el usuario")
	assert.Empty(t, fx.companies.byID, "ni la empresa")
	assert.Empty(t, fx.memberships.rows, "ni la membresía")
}

func TestRegister_PymeSinRUC_Invalido(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	in := validRegister()
	in.RUC = ""
	in.Cedula = "1712345678"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el plan pyme exige RUC, no cédula")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.RUC = "1790099999001"
	_, err = uc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_TaxIDDuplicado(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.Email = "otro@acme.ec"
	_, err = uc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrTaxIDAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "dueno@acme.ec",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "dueno@acme.ec", out.User.Email)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "dueno@acme.ec",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_MismoError(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@ninguna.ec",
		Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"no se revela si el email existe o no")
}

func TestCurrentUser_Inexistente(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	_, err := uc.CurrentUser(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProfile
// ──────────────────────────────────────────────────────────────────────────────

func sPtr(s string) *string { return &s }

func TestUpdateProfile_SoloCamposPresentes(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	out, err := uc.UpdateProfile(context.Background(), reg.User.ID, dto.UpdateProfileRequest{
		FirstName: sPtr("María José"),
	})
	require.NoError(t, err)

	assert.Equal(t, "María José", out.FirstName)
	assert.Equal(t, "Paz", out.LastName, "los campos ausentes no cambian")
}

func TestUpdateProfile_NombreVacio_Invalido(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), reg.User.ID, dto.UpdateProfileRequest{
		FirstName: sPtr(""),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProfile_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuthUC(&memActivity{})
	_, err := uc.UpdateProfile(context.Background(), "no-existe", dto.UpdateProfileRequest{
		FirstName: sPtr("X"),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
