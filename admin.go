package folio

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.Config, false, CsrfToken(c)))
	}
	return a.renderAdminInbox(c, c.QueryParam("msg"))
}

// handleAdminLogin only counts failed attempts against the limiter, so an
// admin who types the password right is never locked out by earlier logins.
func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Logger.Warn("admin: failed login", "ip", ip)
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(a.Config, true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if err := a.Store.DeleteInquiry(id); err != nil {
		if errors.Is(err, ErrInquiryNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return a.renderAdminInbox(c, "deleted")
}

func (a *App) renderAdminInbox(c echo.Context, msg string) error {
	inquiries, err := a.Store.ListInquiries()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminInbox(a.Config, inquiries, msg, CsrfToken(c)))
}
