package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/auth"
	"github.com/medkit-app/medkit-be/src/server/internal/lib/request"
	"github.com/medkit-app/medkit-be/src/server/internal/user/usecase"
)

const loginPath = "/login"

// RequireLogin gates a route behind a valid session cookie. Every request
// revalidates the token against the identity provider - there is no local
// cache. Requests without a usable session are bounced to the login page,
// and the cookie is cleared when the provider explicitly rejects the token.
func RequireLogin(usecase userusecase.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}

			user, apiErr := usecase.ValidateSession(request.Context(c), cookie.Value)
			if apiErr != nil {
				if apiErr.ErrorCode == auth.InvalidSessionCode {
					ClearCookie(c)
				}

				return c.Redirect(http.StatusFound, loginPath)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
