package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
	"github.com/atlaserp/backend/internal/transport/http/dto"
	"github.com/atlaserp/backend/internal/transport/http/middleware"
)

type AuthHandler struct {
	identity     ports.IdentityService
	logger       *logger.Logger
	cookieName   string
	cookieSecure bool
}

type AuthHandlerConfig struct {
	Identity     ports.IdentityService
	Logger       *logger.Logger
	CookieName   string
	CookieSecure bool
}

func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		identity:     cfg.Identity,
		logger:       cfg.Logger,
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.CookieSecure,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  dto.CodeMalformedRequest,
		})
	}

	session, user, err := h.identity.Authenticate(req.Username, req.Password)
	if err != nil {
		h.logger.Warnw("login_failed", "username", req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "invalid credentials",
			Code:  dto.CodeUnauthenticated,
		})
	}

	// Session cookie: no Expires, dropped when the browser closes. The
	// server side keeps the token for the process lifetime.
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	h.logger.Infow("login_ok", "username", user.Username)
	return c.JSON(dto.LoginResponse{OK: true, Modules: user.GrantedModules})
}

// Logout revokes the caller's session. Idempotent: logging out without a
// live session still succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookieName); token != "" {
		h.identity.Revoke(token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(dto.UserToMeResponse(user))
}
