package entity

import "time"

// Plan tarifa SaaS de la empresa.
type Plan string

const (
	PlanPyme         Plan = "pyme"
	PlanProfessional Plan = "professional"
)

// Valid informa si el plan pertenece al conjunto cerrado.
func (p Plan) Valid() bool {
	return p == PlanPyme || p == PlanProfessional
}

// Company representa una organización/tenant del sistema.
// Invariante: exactamente uno de {RUC, Cedula} poblado según el plan
// (pyme exige RUC, professional exige cédula).
type Company struct {
	ID           string
	Name         string
	Plan         Plan
	MaxUsers     int
	MaxAssets    int
	IsActive     bool
	RUC          string
	Cedula       string
	Address      string
	Phone        string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaxID devuelve la identificación tributaria poblada según el plan.
func (c Company) TaxID() string {
	if c.Plan == PlanPyme {
		return c.RUC
	}
	return c.Cedula
}

// ValidTaxID verifica el invariante plan/identificación: pyme ⇒ solo RUC,
// professional ⇒ solo cédula.
func (c Company) ValidTaxID() bool {
	switch c.Plan {
	case PlanPyme:
		return c.RUC != "" && c.Cedula == ""
	case PlanProfessional:
		return c.Cedula != "" && c.RUC == ""
	}
	return false
}

// PlanLimits límites y features por plan. Se consulta en el cliente para
// habilitar UI y se aplica en servidor sobre las operaciones de creación.
type PlanLimits struct {
	MaxUsers           int  `json:"max_users"`
	MaxAssets          int  `json:"max_assets"`
	MaxApplications    int  `json:"max_applications"`
	MaxContracts       int  `json:"max_contracts"`
	MaxLicenses        int  `json:"max_licenses"`
	HasTechnicianRole  bool `json:"has_technician_role"`
	HasAdvancedReports bool `json:"has_advanced_reports"`
	HasAPIAccess       bool `json:"has_api_access"`
}

// LimitsFor tabla de límites por plan.
func LimitsFor(p Plan) PlanLimits {
	switch p {
	case PlanProfessional:
		return PlanLimits{
			MaxUsers:           50,
			MaxAssets:          2000,
			MaxApplications:    500,
			MaxContracts:       500,
			MaxLicenses:        1000,
			HasTechnicianRole:  true,
			HasAdvancedReports: true,
			HasAPIAccess:       true,
		}
	default: // pyme
		return PlanLimits{
			MaxUsers:           10,
			MaxAssets:          500,
			MaxApplications:    100,
			MaxContracts:       100,
			MaxLicenses:        200,
			HasTechnicianRole:  true,
			HasAdvancedReports: false,
			HasAPIAccess:       false,
		}
	}
}
