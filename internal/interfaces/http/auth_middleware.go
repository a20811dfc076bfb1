package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/guard"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/pkg/jwt"
)

// Locals keys para la identidad autenticada y el scope resuelto en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalName   = "name"
	LocalRole   = "role"
	LocalScope  = "scope"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad a c.Locals.
// El rol guardado es el GLOBAL; el rol efectivo por empresa lo resuelve
// ScopeMiddleware contra user_companies.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// ScopeMiddleware resuelve el scope de empresa de la petición a partir del
// parámetro :companyId y lo deja en c.Locals. Requiere AuthMiddleware antes.
//
// Para un super_admin con sesión de soporte activa, el scope queda fijado a la
// empresa de la sesión sin importar el :companyId pedido.
func ScopeMiddleware(resolver *guard.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, err := resolver.Resolve(c.Context(), GetUserID(c), entity.Role(GetRole(c)), c.Params("companyId"))
		if err != nil {
			if err == domain.ErrForbidden {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a la empresa"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalScope, scope)
		return c.Next()
	}
}

// RequireRole exige que el rol GLOBAL del token sea uno de los permitidos.
// Se usa para las rutas /api/admin (super_admin).
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual := entity.Role(GetRole(c))
		for _, r := range roles {
			if actual == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole devuelve el rol global del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetScope devuelve el scope resuelto (después de ScopeMiddleware).
func GetScope(c *fiber.Ctx) domain.Scope {
	v := c.Locals(LocalScope)
	if v == nil {
		return domain.Scope{}
	}
	s, _ := v.(domain.Scope)
	return s
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
