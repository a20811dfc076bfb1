package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeAssetRepo struct {
	apps []*entity.Asset
}

func (f *fakeAssetRepo) Create(context.Context, *entity.Asset) error { return nil }
func (f *fakeAssetRepo) GetByID(context.Context, string, string) (*entity.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) ListApplications(context.Context, string) ([]*entity.Asset, error) {
	return f.apps, nil
}
func (f *fakeAssetRepo) CountByCompany(context.Context, string) (int, error)    { return 0, nil }
func (f *fakeAssetRepo) CountApplications(context.Context, string) (int, error) { return 0, nil }
func (f *fakeAssetRepo) Update(context.Context, *entity.Asset) error             { return nil }
func (f *fakeAssetRepo) Delete(context.Context, string, string) error            { return nil }

type fakeMembershipRepo struct {
	members []*entity.Member
}

func (f *fakeMembershipRepo) Create(context.Context, *entity.UserCompany) error { return nil }
func (f *fakeMembershipRepo) Get(context.Context, string, string) (*entity.UserCompany, error) {
	return nil, nil
}
func (f *fakeMembershipRepo) ListByUser(context.Context, string) ([]*entity.UserCompany, error) {
	return nil, nil
}
func (f *fakeMembershipRepo) ListMembers(context.Context, string) ([]*entity.Member, error) {
	return f.members, nil
}
func (f *fakeMembershipRepo) ListMembersByRole(context.Context, string, entity.Role) ([]*entity.Member, error) {
	return nil, nil
}
func (f *fakeMembershipRepo) CountByCompany(context.Context, string) (int, error) { return 0, nil }
func (f *fakeMembershipRepo) Delete(context.Context, string, string) error        { return nil }

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (f *fakeNotificationRepo) CreateBatch(_ context.Context, batch []*entity.Notification) error {
	f.created = append(f.created, batch...)
	return nil
}
func (f *fakeNotificationRepo) ListByRecipient(context.Context, string, string, int, int) ([]*entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) CountUnread(context.Context, string, string) (int, error) {
	return 0, nil
}
func (f *fakeNotificationRepo) MarkRead(context.Context, string, string, string) (bool, error) {
	return false, nil
}

// fakeTxRunner ejecuta fn sin transacción real, entregando los fakes.
type fakeTxRunner struct {
	notifications *fakeNotificationRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.Atomic) error) error {
	return fn(repository.Atomic{Notifications: f.notifications})
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: una aplicación con dominio crítico, SSL próximo, hosting sin
// rastreo y servidor lejano; técnico asignado que además es admin.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrStr(s string) *string        { return &s }

func buildUseCase(apps []*entity.Asset, members []*entity.Member) (*ExpiryUseCase, *fakeNotificationRepo) {
	notifs := &fakeNotificationRepo{}
	uc := NewExpiryUseCase(
		&fakeAssetRepo{apps: apps},
		&fakeMembershipRepo{members: members},
		&fakeTxRunner{notifications: notifs},
	)
	uc.now = func() time.Time { return testNow }
	return uc, notifs
}

func testApp() *entity.Asset {
	return &entity.Asset{
		ID:                   "app-1",
		CompanyID:            "c1",
		Name:                 "Portal Web",
		Type:                 entity.AssetApplication,
		DomainExpiry:         ptrTime(testNow.AddDate(0, 0, 5)),  // critical
		SSLExpiry:            ptrTime(testNow.AddDate(0, 0, 20)), // upcoming
		HostingExpiry:        nil,                                // sin rastreo
		ServerExpiry:         ptrTime(testNow.AddDate(0, 0, 60)), // none
		AssignedTechnicianID: ptrStr("tech-admin"),
	}
}

func testMembers() []*entity.Member {
	return []*entity.Member{
		{UserID: "tech-admin", Role: entity.RoleTechnicalAdmin}, // también es el técnico asignado
		{UserID: "owner", Role: entity.RoleManagerOwner},
		{UserID: "junior", Role: entity.RoleTechnician}, // no es destinatario
	}
}

func TestGenerateForCompany_FanOutSinDuplicados(t *testing.T) {
	uc, notifs := buildUseCase([]*entity.Asset{testApp()}, testMembers())

	created, err := uc.GenerateForCompany(context.Background(), "c1")
	require.NoError(t, err)

	// 2 servicios alertables (domain critical, ssl upcoming) × 2 destinatarios
	// (tech-admin una sola vez aunque sea técnico Y admin, más owner).
	assert.Equal(t, 4, created)
	require.Len(t, notifs.created, 4)

	recipients := map[string]int{}
	for _, n := range notifs.created {
		recipients[n.UserID]++
		assert.Equal(t, "c1", n.CompanyID)
		assert.Equal(t, entity.NotificationExpiryAlert, n.Type)
		assert.Equal(t, "asset", n.EntityType)
		assert.Equal(t, "app-1", n.EntityID)
		assert.False(t, n.IsRead)
	}
	assert.Equal(t, 2, recipients["tech-admin"],
		"el técnico que también es admin recibe UNA notificación por servicio, no dos")
	assert.Equal(t, 2, recipients["owner"])
	assert.Zero(t, recipients["junior"], "technician sin asignación no es destinatario")
}

func TestGenerateForCompany_SinVencimientos_NoEscribe(t *testing.T) {
	app := testApp()
	app.DomainExpiry = ptrTime(testNow.AddDate(1, 0, 0))
	app.SSLExpiry = nil
	app.ServerExpiry = nil
	uc, notifs := buildUseCase([]*entity.Asset{app}, testMembers())

	created, err := uc.GenerateForCompany(context.Background(), "c1")
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, notifs.created, "sin urgencia no debe tocarse la persistencia")
}

func TestGenerate_TechnicianNoAutorizado(t *testing.T) {
	uc, _ := buildUseCase(nil, nil)
	scope := domain.Scope{
		ActingUserID:       "junior",
		GlobalRole:         entity.RoleTechnician,
		EffectiveCompanyID: "c1",
		CompanyRole:        entity.RoleTechnician,
	}

	_, err := uc.Generate(context.Background(), scope)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"generar alertas bajo demanda exige nivel technical_admin")
}

func TestDisplayAlerts_MismosUmbralesQueGeneracion(t *testing.T) {
	uc, notifs := buildUseCase([]*entity.Asset{testApp()}, testMembers())
	scope := domain.Scope{
		ActingUserID:       "junior",
		GlobalRole:         entity.RoleTechnician,
		EffectiveCompanyID: "c1",
		CompanyRole:        entity.RoleTechnician,
	}

	alerts, err := uc.DisplayAlerts(context.Background(), scope)
	require.NoError(t, err)
	require.Len(t, alerts, 2, "solo domain y ssl están dentro de la ventana de 30 días")

	byService := map[string]string{}
	for _, a := range alerts {
		byService[a.Service] = a.Urgency
		assert.Equal(t, "app-1", a.AssetID)
		assert.Equal(t, "Portal Web", a.AssetName)
	}
	assert.Equal(t, "critical", byService["domain"])
	assert.Equal(t, "upcoming", byService["ssl"])

	assert.Empty(t, notifs.created,
		"las alertas del dashboard se calculan al vuelo, sin persistir nada")
}

func TestDisplayAlerts_DiasRestantes(t *testing.T) {
	uc, _ := buildUseCase([]*entity.Asset{testApp()}, nil)
	scope := domain.Scope{
		ActingUserID:       "owner",
		GlobalRole:         entity.RoleManagerOwner,
		EffectiveCompanyID: "c1",
		CompanyRole:        entity.RoleManagerOwner,
	}

	alerts, err := uc.DisplayAlerts(context.Background(), scope)
	require.NoError(t, err)
	for _, a := range alerts {
		if a.Service == "domain" {
			assert.Equal(t, 5, a.DaysLeft)
		}
	}
}
