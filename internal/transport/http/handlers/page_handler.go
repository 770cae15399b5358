package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atlaserp/backend/internal/core/ports"
)

// PageHandler gates the demo UI pages: anonymous callers land on the login
// page, authenticated ones on the dashboard. The pages themselves are plain
// files under the configured static dir.
type PageHandler struct {
	identity   ports.IdentityService
	cookieName string
	staticDir  string
}

func NewPageHandler(identity ports.IdentityService, cookieName, staticDir string) *PageHandler {
	return &PageHandler{identity: identity, cookieName: cookieName, staticDir: staticDir}
}

func (h *PageHandler) Root(c *fiber.Ctx) error {
	if h.authenticated(c) {
		return c.Redirect("/dashboard.html", fiber.StatusFound)
	}
	return c.Redirect("/login.html", fiber.StatusFound)
}

// ServePage serves *.html documents. Everything except the login page
// requires a live session.
func (h *PageHandler) ServePage(c *fiber.Ctx) error {
	name := filepath.Base(c.Path())
	if !strings.HasSuffix(name, ".html") {
		return c.Next()
	}
	if name != "login.html" && !h.authenticated(c) {
		return c.Redirect("/login.html", fiber.StatusFound)
	}
	return c.SendFile(filepath.Join(h.staticDir, name))
}

func (h *PageHandler) authenticated(c *fiber.Ctx) bool {
	token := c.Cookies(h.cookieName)
	if token == "" {
		return false
	}
	_, err := h.identity.Resolve(token)
	return err == nil
}
