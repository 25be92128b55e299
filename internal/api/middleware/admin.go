package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

// AdminOnly gates a route on the admin account-type claim. Runs after Auth;
// a customer token or an absent claim fails with 401.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountType, _ := c.Get("account_type").(string)
			if accountType != domain.AccountAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin access required")
			}
			return next(c)
		}
	}
}
