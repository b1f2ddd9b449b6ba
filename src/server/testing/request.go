package testing

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/session"
)

type RequestModifier func(r *http.Request)

type RequestModifiers []RequestModifier

func (r *RequestModifiers) Add(mods ...RequestModifier) {
	*r = append(*r, mods...)
}

func WithSessionToken(token string) RequestModifier {
	return func(request *http.Request) {
		request.AddCookie(&http.Cookie{
			Name:  session.CookieName,
			Value: token,
		})
	}
}

func WithUserCred(user User) RequestModifier {
	return WithSessionToken(TokenForUserSub(user.Sub))
}

type RequestFactory struct {
	Method string
	Target string
	Form   url.Values
	Mods   RequestModifiers
}

func (r RequestFactory) MakeFake() *http.Request {
	var body io.Reader

	if r.Form != nil {
		body = strings.NewReader(r.Form.Encode())
	}

	request := httptest.NewRequest(r.Method, r.Target, body)

	if r.Form != nil {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}

	for _, mod := range r.Mods {
		mod(request)
	}

	return request
}
