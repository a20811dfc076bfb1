package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/alerts"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// NotificationHandler maneja las notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc       *usecase.NotificationUseCase
	expiryUC *alerts.ExpiryUseCase
}

// NewNotificationHandler construye el handler inyectando los casos de uso.
func NewNotificationHandler(uc *usecase.NotificationUseCase, expiryUC *alerts.ExpiryUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc, expiryUC: expiryUC}
}

// List godoc
// @Summary      Notificaciones del usuario en la empresa
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications/{companyId} [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), GetScope(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UnreadCount godoc
// @Summary      Cantidad de notificaciones no leídas
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.UnreadCountResponse
// @Router       /api/notifications/{companyId}/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	out, err := h.uc.UnreadCount(c.Context(), GetScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída
// @Tags         notifications
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{companyId}/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateExpiryAlerts godoc
// @Summary      Generar alertas de vencimiento bajo demanda
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.GenerateAlertsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/notifications/{companyId}/create-expiry-alerts [post]
func (h *NotificationHandler) GenerateExpiryAlerts(c *fiber.Ctx) error {
	created, err := h.expiryUC.Generate(c.Context(), GetScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.GenerateAlertsResponse{Created: created})
}
