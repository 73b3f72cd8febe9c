package api

import (
	"strings"
	"unicode"

	"insight-agent/internal/domain/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

const bearerKey = "bearer_token"

// BearerGate only checks that a non-empty bearer token is present. The token
// content is not verified; it is used as the client identity for quotas.
func BearerGate() fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + fiber.HeaderAuthorization,
		// empty scheme hands the raw header to Validator, which matches
		// the scheme case-insensitively
		AuthScheme: "",
		Validator: func(c *fiber.Ctx, header string) (bool, error) {
			token, ok := parseBearer(header)
			if !ok {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			c.Locals(bearerKey, token)
			return true, nil
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": entity.ErrUnauthorized.Error()})
		},
	})
}

// parseBearer splits "<scheme> <token>" on the first run of whitespace.
func parseBearer(header string) (string, bool) {
	header = strings.TrimSpace(header)
	i := strings.IndexFunc(header, unicode.IsSpace)
	if i < 0 {
		return "", false
	}
	scheme, token := header[:i], strings.TrimSpace(header[i:])
	if !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func bearerToken(c *fiber.Ctx) string {
	token, _ := c.Locals(bearerKey).(string)
	return token
}
