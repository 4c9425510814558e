package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
)

const customerLocalsKey = "customer"

// authClaims son los claims esperados en el token de sesión
type authClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware retorna un middleware que exige un token de sesión válido
// (header Authorization Bearer o cookie access_token) y deja el cliente
// autenticado disponible en c.Locals
func NewAuthMiddleware(jwtSecret string) fiber.Handler {
	secret := []byte(jwtSecret)

	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not_authenticated",
			})
		}

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not_authenticated",
			})
		}

		c.Locals(customerLocalsKey, application.Customer{
			ID:    claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		})
		return c.Next()
	}
}

// CustomerFromCtx retorna el cliente autenticado dejado por el middleware
func CustomerFromCtx(c *fiber.Ctx) application.Customer {
	if customer, ok := c.Locals(customerLocalsKey).(application.Customer); ok {
		return customer
	}
	return application.Customer{}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return c.Cookies("access_token")
}
