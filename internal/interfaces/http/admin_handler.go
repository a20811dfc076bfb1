package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AdminHandler expone las operaciones globales del super_admin:
// gestión de tenants y modo soporte.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler inyectando el caso de uso.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// adminScope arma el scope sin empresa efectiva: las rutas de administración
// no pasan por ScopeMiddleware porque operan sobre todos los tenants.
func adminScope(c *fiber.Ctx) domain.Scope {
	return domain.Scope{
		ActingUserID: GetUserID(c),
		GlobalRole:   entity.Role(GetRole(c)),
	}
}

// ListCompanies godoc
// @Summary      Listar todas las empresas (super_admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.AdminCompanyListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/companies [get]
func (h *AdminHandler) ListCompanies(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListCompanies(c.Context(), adminScope(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateCompany godoc
// @Summary      Cambiar plan o activación de una empresa (super_admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la empresa"
// @Param        body  body  dto.AdminUpdateCompanyRequest  true  "Cambios"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id} [put]
func (h *AdminHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.AdminUpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateCompany(c.Context(), adminScope(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteCompany godoc
// @Summary      Eliminar una empresa y todo su contenido (super_admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id} [delete]
func (h *AdminHandler) DeleteCompany(c *fiber.Ctx) error {
	if err := h.uc.DeleteCompany(c.Context(), adminScope(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EnterSupport godoc
// @Summary      Entrar en modo soporte sobre una empresa (super_admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.SupportStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/support/{id} [post]
func (h *AdminHandler) EnterSupport(c *fiber.Ctx) error {
	out, err := h.uc.EnterSupport(c.Context(), adminScope(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExitSupport godoc
// @Summary      Salir del modo soporte (super_admin)
// @Tags         admin
// @Security     BearerAuth
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/support [delete]
func (h *AdminHandler) ExitSupport(c *fiber.Ctx) error {
	if err := h.uc.ExitSupport(c.Context(), adminScope(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SupportStatus godoc
// @Summary      Estado actual del modo soporte (super_admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SupportStatusResponse
// @Router       /api/admin/support [get]
func (h *AdminHandler) SupportStatus(c *fiber.Ctx) error {
	out, err := h.uc.SupportStatus(c.Context(), adminScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
