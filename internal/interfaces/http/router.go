package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/alerts"
	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/guard"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	AssetUC        *usecase.AssetUseCase
	ContractUC     *usecase.ContractUseCase
	LicenseUC      *usecase.LicenseUseCase
	MaintenanceUC  *usecase.MaintenanceUseCase
	NotificationUC *usecase.NotificationUseCase
	AdminUC        *usecase.AdminUseCase
	SummaryUC      *analytics.SummaryUseCase
	ExpiryUC       *alerts.ExpiryUseCase
	Resolver       *guard.Resolver
	Companies      repository.CompanyRepository
	Reports        *pdf.CostReportGenerator
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/me", authHandler.UpdateProfile)
	protected.Post("/auth/logout", authHandler.Logout)

	// El scope por empresa se resuelve una sola vez por request a partir
	// del parámetro :companyId; los handlers lo leen de los Locals.
	scoped := ScopeMiddleware(deps.Resolver)

	// Companies y membresías
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/companies", companyHandler.ListMemberships)
	protected.Post("/companies", companyHandler.Create)
	companies := protected.Group("/companies/:companyId", scoped)
	companies.Get("/", companyHandler.GetByID)
	companies.Put("/", companyHandler.Update)
	companies.Get("/members", companyHandler.ListMembers)
	companies.Post("/members", companyHandler.AddMember)
	companies.Delete("/members/:userId", companyHandler.RemoveMember)
	companies.Get("/technicians", companyHandler.ListTechnicians)

	// Assets
	assetHandler := NewAssetHandler(deps.AssetUC, deps.MaintenanceUC)
	assets := protected.Group("/assets/:companyId", scoped)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)
	assets.Get("/:id/maintenance", assetHandler.MaintenanceHistory)

	// Contracts
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts := protected.Group("/contracts/:companyId", scoped)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)
	contracts.Delete("/:id", contractHandler.Delete)

	// Licenses
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	licenses := protected.Group("/licenses/:companyId", scoped)
	licenses.Post("/", licenseHandler.Create)
	licenses.Get("/", licenseHandler.List)
	licenses.Get("/:id", licenseHandler.GetByID)
	licenses.Put("/:id", licenseHandler.Update)
	licenses.Delete("/:id", licenseHandler.Delete)

	// Maintenance
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenance := protected.Group("/maintenance/:companyId", scoped)
	maintenance.Post("/", maintenanceHandler.Create)
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Get("/:id", maintenanceHandler.GetByID)
	maintenance.Put("/:id", maintenanceHandler.Update)
	maintenance.Delete("/:id", maintenanceHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.SummaryUC, deps.ExpiryUC, deps.Companies, deps.Reports)
	dashboard := protected.Group("/dashboard/:companyId", scoped)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/activity", dashboardHandler.RecentActivity)
	dashboard.Get("/alerts", dashboardHandler.Alerts)
	dashboard.Get("/summary-pdf", dashboardHandler.SummaryPDF)

	// Notifications
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.ExpiryUC)
	notifications := protected.Group("/notifications/:companyId", scoped)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Post("/create-expiry-alerts", notificationHandler.GenerateExpiryAlerts)

	// Admin (solo super_admin; no pasa por ScopeMiddleware)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := protected.Group("/admin", RequireRole(entity.RoleSuperAdmin))
	admin.Get("/companies", adminHandler.ListCompanies)
	admin.Put("/companies/:id", adminHandler.UpdateCompany)
	admin.Delete("/companies/:id", adminHandler.DeleteCompany)
	admin.Post("/support/:id", adminHandler.EnterSupport)
	admin.Delete("/support", adminHandler.ExitSupport)
	admin.Get("/support", adminHandler.SupportStatus)
}
