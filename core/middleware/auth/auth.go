package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// Config configures the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables authentication.
	ApiKey string
	// AllowsMethod, when set, rejects methods it returns false for with 405.
	AllowsMethod func(method string) bool
}

// New returns a middleware that checks the API key header (or the api_key
// query parameter) and enforces the method policy.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey != "" {
			key := c.Get(HeaderName)
			if key == "" {
				key = c.Query("api_key")
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
			}
		}

		if cfg.AllowsMethod != nil && !cfg.AllowsMethod(c.Method()) {
			return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Server is read-only"})
		}

		return c.Next()
	}
}
