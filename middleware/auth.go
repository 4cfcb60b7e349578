package middleware

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys populated by RequireAuth. Handlers read identity only from
// here; there is no server-side session.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

// ParseIdentity extracts and verifies the bearer token on the request,
// returning the username and role claims. ok is false when there is no
// usable token. Expiry is enforced by the parser through the exp claim.
func ParseIdentity(c *fiber.Ctx) (username, role string, ok bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", "", false
	}

	var tokenString string
	fmt.Sscanf(authHeader, "Bearer %s", &tokenString)
	if tokenString == "" {
		return "", "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", false
	}

	username, _ = claims["username"].(string)
	role, _ = claims["role"].(string)
	if username == "" {
		return "", "", false
	}
	return username, role, true
}

// RequireAuth parses the bearer token and stores the request identity in
// locals.
func RequireAuth(c *fiber.Ctx) error {
	username, role, ok := ParseIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	c.Locals(LocalUsername, username)
	c.Locals(LocalRole, role)
	return c.Next()
}

// RequireRole gates a route to the given roles. Authorization failures
// are a hard stop: a bare 403, no notice.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// Identity returns the authenticated username and role from locals.
func Identity(c *fiber.Ctx) (string, string) {
	username, _ := c.Locals(LocalUsername).(string)
	role, _ := c.Locals(LocalRole).(string)
	return username, role
}
