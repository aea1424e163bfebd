package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/toolshedapp/toolshed/internal/auth"
)

// AuthHandler implements the device login. There is no user database: the
// device owner proves possession of the configured passphrase and receives
// an access token for the mutating routes.
type AuthHandler struct {
	PassHash string // bcrypt hash of the device passphrase
	Secret   string // token signing secret
	TTLMin   int    // access token lifetime in minutes
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(passHash, secret string, ttlMin int) *AuthHandler {
	return &AuthHandler{PassHash: passHash, Secret: secret, TTLMin: ttlMin}
}

// Login handles POST /v1/auth/login with body {"passphrase": "..."}. A
// correct passphrase yields an access token and its expiry; anything else
// is a 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Passphrase string `json:"passphrase"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !auth.VerifyPassphrase(h.PassHash, req.Passphrase) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid passphrase"})
	}
	tok, err := auth.NewAccessToken(h.Secret, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token signing failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
