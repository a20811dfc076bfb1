package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType tipo de activo: equipo físico o aplicación.
type AssetType string

const (
	AssetPhysical    AssetType = "physical"
	AssetApplication AssetType = "application"
)

// Valid informa si el tipo pertenece al conjunto cerrado.
func (t AssetType) Valid() bool {
	return t == AssetPhysical || t == AssetApplication
}

// AssetStatus estado operativo de un activo.
type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetInactive    AssetStatus = "inactive"
	AssetMaintenance AssetStatus = "maintenance"
	AssetDeprecated  AssetStatus = "deprecated"
	AssetDisposed    AssetStatus = "disposed"
)

// Valid informa si el estado pertenece al conjunto cerrado.
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetActive, AssetInactive, AssetMaintenance, AssetDeprecated, AssetDisposed:
		return true
	}
	return false
}

// ApplicationType subtipo para activos de tipo application.
type ApplicationType string

const (
	AppSaaS              ApplicationType = "saas"
	AppCustomDevelopment ApplicationType = "custom_development"
)

// Valid informa si el subtipo pertenece al conjunto cerrado.
func (t ApplicationType) Valid() bool {
	return t == AppSaaS || t == AppCustomDevelopment
}

// InfraService servicio de infraestructura con vencimiento rastreable,
// presente solo en activos de tipo application.
type InfraService string

const (
	ServiceDomain  InfraService = "domain"
	ServiceSSL     InfraService = "ssl"
	ServiceHosting InfraService = "hosting"
	ServiceServer  InfraService = "server"
)

// InfraServices los cuatro servicios rastreables, en orden estable.
func InfraServices() [4]InfraService {
	return [4]InfraService{ServiceDomain, ServiceSSL, ServiceHosting, ServiceServer}
}

// Asset activo de TI (unión de equipo físico y aplicación).
// Los campos de infraestructura solo tienen sentido cuando Type == application.
type Asset struct {
	ID          string
	CompanyID   string
	Name        string
	Type        AssetType
	Status      AssetStatus
	MonthlyCost decimal.Decimal
	AnnualCost  decimal.Decimal // campo independiente, no necesariamente 12× el mensual

	// Solo para Type == application:
	ApplicationType      ApplicationType
	DomainCost           decimal.Decimal
	DomainExpiry         *time.Time
	SSLCost              decimal.Decimal
	SSLExpiry            *time.Time
	HostingCost          decimal.Decimal
	HostingExpiry        *time.Time
	ServerCost           decimal.Decimal
	ServerExpiry         *time.Time
	AssignedTechnicianID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceExpiry devuelve la fecha de vencimiento del servicio (nil = sin rastreo).
func (a Asset) ServiceExpiry(svc InfraService) *time.Time {
	switch svc {
	case ServiceDomain:
		return a.DomainExpiry
	case ServiceSSL:
		return a.SSLExpiry
	case ServiceHosting:
		return a.HostingExpiry
	case ServiceServer:
		return a.ServerExpiry
	}
	return nil
}

// ServiceCost devuelve el sub-costo del servicio.
func (a Asset) ServiceCost(svc InfraService) decimal.Decimal {
	switch svc {
	case ServiceDomain:
		return a.DomainCost
	case ServiceSSL:
		return a.SSLCost
	case ServiceHosting:
		return a.HostingCost
	case ServiceServer:
		return a.ServerCost
	}
	return decimal.Zero
}
