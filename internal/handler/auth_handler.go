package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/pkg/jwtutil"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
)

// AuthHandler issues session tokens. There is no account database: the
// configured admin address gets the admin role, every other email gets
// the user role.
type AuthHandler struct {
	adminEmail string
}

func NewAuthHandler(adminEmail string) *AuthHandler {
	return &AuthHandler{adminEmail: adminEmail}
}

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// Login resolves the caller's role from their email and returns a signed
// token
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email is required"})
	}

	role := "user"
	if strings.EqualFold(email, h.adminEmail) {
		role = "admin"
	}

	token, err := jwtutil.GenerateToken(email, strings.TrimSpace(req.Name), role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate token"})
	}

	log.Info("User logged in",
		zap.String("email", email),
		zap.String("role", role))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"email": email,
		"role":  role,
	})
}
