package middleware

import (
	"fmt"
	"os"
	"strings"

	"travelplans/constants"
	"travelplans/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireRoles creates a middleware that admits principals holding any of
// the given roles. Admin always passes: data access is the union of held
// roles, so the widest role clears every gate.
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid session token.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

// IsAuthenticated checks for a valid session JWT in the Authorization
// header or the access cookie, verifies the role claim against the
// required set and attaches the claims to the request context.
func IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error":  "Invalid authorization header format",
				})
			}
			token = tokenParts[1]
		} else {
			// Fall back to the session cookie
			token = c.Cookies("access")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error":  "Authorization token missing",
				})
			}
		}

		claims, hasAccess := hasRole(token, requiredRoles)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if !hasAccess {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "error": "Insufficient permissions"})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// VerifyJWT verifies a session token and returns its claims.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv(constants.EnvJWTSecret)), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid JWT token")
}

func hasRole(tokenString string, requiredRoles []string) (jwt.MapClaims, bool) {
	claims, err := VerifyJWT(tokenString)
	if err != nil {
		return nil, false
	}

	for _, required := range requiredRoles {
		if required == constants.RoleAny {
			return claims, true
		}
	}

	roleSet := RolesFromClaims(claims)
	if roleSet[constants.RoleAdmin] {
		return claims, true
	}
	for _, required := range requiredRoles {
		if roleSet[required] {
			return claims, true
		}
	}
	return claims, false
}

// RolesFromClaims converts the roles claim to a lookup set.
func RolesFromClaims(claims jwt.MapClaims) map[string]bool {
	roleSet := make(map[string]bool)
	claimed, ok := claims["roles"].([]interface{})
	if !ok {
		return roleSet
	}
	for _, r := range claimed {
		if role, ok := r.(string); ok {
			roleSet[role] = true
		}
	}
	return roleSet
}

// PrincipalID returns the subject claim from the request context.
func PrincipalID(c *fiber.Ctx) (string, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return "", false
	}
	id, ok := claims["sub"].(string)
	return id, ok && id != ""
}

// PrincipalEmail returns the email claim from the request context.
func PrincipalEmail(c *fiber.Ctx) (string, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return "", false
	}
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}

// PrincipalRoles returns the role set from the request context.
func PrincipalRoles(c *fiber.Ctx) map[string]bool {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return make(map[string]bool)
	}
	return RolesFromClaims(claims)
}
