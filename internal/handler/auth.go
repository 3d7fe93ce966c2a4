package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // expiry formatting

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing
	"golang.org/x/crypto/bcrypt"  // password verification

	"github.com/iliyamo/restaurant-table-booking/internal/booking" // staff directory lookup
	"github.com/iliyamo/restaurant-table-booking/internal/config"  // app configuration
	"github.com/iliyamo/restaurant-table-booking/internal/utils"   // token issuing helpers
)

// AuthHandler bundles dependencies for staff auth endpoints.  The
// restaurant runs a small shared-terminal setup: every staff member on
// the roster signs in with their name plus the shared floor password,
// and the issued token carries their role for endpoint guards.
type AuthHandler struct {
	Cfg config.Config
	Svc *booking.Service
}

func NewAuthHandler(cfg config.Config, svc *booking.Service) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Svc: svc}
}

type tokenPart struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}
type staffPart struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
type loginResp struct {
	Staff  staffPart `json:"staff"`
	Access tokenPart `json:"access"`
}

// Login verifies a staff name against the roster and the shared floor
// password against the configured bcrypt hash, then issues an access
// token.  Unknown names and wrong passwords get the same answer so the
// endpoint does not leak the roster.
func (h *AuthHandler) Login(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	password := c.FormValue("password")
	if name == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/password required"})
	}

	roster, err := h.Svc.Staff(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "staff lookup failed"})
	}
	role := ""
	for _, s := range roster {
		if strings.EqualFold(s.Name, name) {
			name = s.Name // canonical casing from the roster
			role = s.Role
			break
		}
	}
	if role == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Cfg.StaffPasswordHash), []byte(password)); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, name, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Staff:  staffPart{Name: name, Role: role},
		Access: tokenPart{Token: access.Token, Expires: access.Exp.Format(time.RFC3339)},
	})
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name": c.Get("staff_name"),
		"role": c.Get("role"),
	})
}
