package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/alerts"
	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
)

// DashboardHandler expone el resumen de costos, la actividad reciente
// y las alertas de vencimiento de la empresa activa.
type DashboardHandler struct {
	summaryUC *analytics.SummaryUseCase
	expiryUC  *alerts.ExpiryUseCase
	companies repository.CompanyRepository
	reports   *pdf.CostReportGenerator
}

// NewDashboardHandler construye el handler inyectando las dependencias.
func NewDashboardHandler(
	summaryUC *analytics.SummaryUseCase,
	expiryUC *alerts.ExpiryUseCase,
	companies repository.CompanyRepository,
	reports *pdf.CostReportGenerator,
) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC, expiryUC: expiryUC, companies: companies, reports: reports}
}

// Summary godoc
// @Summary      Resumen de costos e inventario
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/{companyId}/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.summaryUC.GetSummary(c.Context(), GetScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Actividad reciente de la empresa
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200  {array}  dto.ActivityEntryDTO
// @Router       /api/dashboard/{companyId}/activity [get]
func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	out, err := h.summaryUC.RecentActivity(c.Context(), GetScope(c), c.QueryInt("limit", 20))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de vencimiento calculadas al vuelo
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.ExpiryAlertDTO
// @Router       /api/dashboard/{companyId}/alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.expiryUC.DisplayAlerts(c.Context(), GetScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Descargar el resumen de costos en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/{companyId}/summary-pdf [get]
func (h *DashboardHandler) SummaryPDF(c *fiber.Ctx) error {
	scope := GetScope(c)
	summary, err := h.summaryUC.GetSummary(c.Context(), scope)
	if err != nil {
		return writeError(c, err)
	}
	company, err := h.companies.GetByID(c.Context(), scope.EffectiveCompanyID)
	if err != nil {
		return writeError(c, err)
	}
	if company == nil {
		return writeError(c, domain.ErrNotFound)
	}

	now := time.Now()
	doc, err := h.reports.GenerateCostReport(c.Context(), company, summary, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: "no se pudo generar el reporte"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resumen-costos-%s.pdf"`, now.Format("2006-01-02")))
	return c.Send(doc)
}
