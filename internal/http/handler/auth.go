package handler

import "github.com/gofiber/fiber/v2"

// Temporary user table until a real user store exists. No sessions or
// tokens are issued; a successful login only echoes the user back.
var fakeUsers = map[string]struct {
	Password string
	Name     string
}{
	"demo@example.com": {Password: "demo1234", Name: "Demo"},
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials against the in-memory user table.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		user, ok := fakeUsers[req.Email]
		if !ok || user.Password != req.Password {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		}
		return c.JSON(fiber.Map{
			"message": "Login Successful",
			"name":    user.Name,
			"email":   req.Email,
		})
	}
}
