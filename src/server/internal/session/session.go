package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/user/entity"
)

const (
	CookieName = "session_token"

	userContextKey = "session_user"
)

func SetCookie(c echo.Context, accessToken string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// UserFromContext returns the session user that RequireLogin stashed for
// the current request.
func UserFromContext(c echo.Context) (userentity.User, bool) {
	user, ok := c.Get(userContextKey).(userentity.User)
	return user, ok
}
