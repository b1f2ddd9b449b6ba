package usergateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/gateway"
	"github.com/medkit-app/medkit-be/src/server/internal/lib/request"
	"github.com/medkit-app/medkit-be/src/server/internal/session"
	"github.com/medkit-app/medkit-be/src/server/internal/user/entity"
	"github.com/medkit-app/medkit-be/src/server/internal/user/usecase"
)

const (
	loginPage    = "login.html"
	registerPage = "register.html"
)

type Gateway struct {
	usecase userusecase.Usecase
}

func NewGateway(usecase userusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, loginPage, echo.Map{})
}

func (g Gateway) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, registerPage, echo.Map{})
}

func (g Gateway) SubmitLogin(c echo.Context) error {
	ctx := request.Context(c)

	input := userentity.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	userSession, apiErr := g.usecase.Login(ctx, input)
	if apiErr != nil {
		return gateway.ErrorPage(c, loginPage, echo.Map{"Email": input.Email}, apiErr)
	}

	session.SetCookie(c, userSession.AccessToken)
	return c.Redirect(http.StatusFound, "/")
}

func (g Gateway) SubmitRegister(c echo.Context) error {
	ctx := request.Context(c)

	input := userentity.RegisterInput{
		LoginInput: userentity.LoginInput{
			Email:    c.FormValue("email"),
			Password: c.FormValue("password"),
		},
		ConfirmPassword: c.FormValue("confirm_password"),
	}

	_, apiErr := g.usecase.Register(ctx, input)
	if apiErr != nil {
		return gateway.ErrorPage(c, registerPage, echo.Map{"Email": input.Email}, apiErr)
	}

	// the new account isn't signed in yet - hand the user the login form
	return c.Render(http.StatusOK, loginPage, echo.Map{
		"Notice": "Your account has been created. Please log in",
		"Email":  input.Email,
	})
}

func (g Gateway) Logout(c echo.Context) error {
	session.ClearCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
