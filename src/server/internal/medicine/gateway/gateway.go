package medicinegateway

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/auth"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/gateway"
	"github.com/medkit-app/medkit-be/src/server/internal/lib/request"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/entity"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/errors"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/usecase"
	"github.com/medkit-app/medkit-be/src/server/internal/session"
	"github.com/medkit-app/medkit-be/src/server/internal/user/entity"
)

const (
	medkitPage = "medkit.html"
	medkitPath = "/medkit"
)

type Gateway struct {
	usecase medicineusecase.Usecase
}

func NewGateway(usecase medicineusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) MedkitPage(c echo.Context) error {
	ctx := request.Context(c)

	user, apiErr := sessionUser(c)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, echo.Map{}, apiErr)
	}

	medicines, apiErr := g.usecase.GetMedicinesForOwner(ctx, user.Sub)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, g.pageData(c, user), apiErr)
	}

	return c.Render(http.StatusOK, medkitPage, echo.Map{
		"Email":     user.Email,
		"Medicines": medicines,
	})
}

func (g Gateway) AddMedicine(c echo.Context) error {
	ctx := request.Context(c)

	user, apiErr := sessionUser(c)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, echo.Map{}, apiErr)
	}

	input, apiErr := bindInput(c, user)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, g.pageData(c, user), apiErr)
	}

	if _, apiErr := g.usecase.AddMedicine(ctx, input); apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, g.pageData(c, user), apiErr)
	}

	return c.Redirect(http.StatusSeeOther, medkitPath)
}

func (g Gateway) EditMedicine(c echo.Context) error {
	ctx := request.Context(c)

	user, apiErr := sessionUser(c)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, echo.Map{}, apiErr)
	}

	input, apiErr := bindInput(c, user)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, g.pageData(c, user), apiErr)
	}

	updateInput := medicineentity.UpdateInput{
		Input:      input,
		MedicineID: c.FormValue("medicine_id"),
	}

	if _, apiErr := g.usecase.UpdateMedicine(ctx, updateInput); apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, g.pageData(c, user), apiErr)
	}

	return c.Redirect(http.StatusSeeOther, medkitPath)
}

func (g Gateway) DeleteMedicine(c echo.Context) error {
	ctx := request.Context(c)

	user, apiErr := sessionUser(c)
	if apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, echo.Map{}, apiErr)
	}

	medicineID := c.FormValue("medicine_id")

	if apiErr := g.usecase.DeleteMedicine(ctx, user.Sub, medicineID); apiErr != nil {
		return gateway.ErrorPage(c, medkitPage, g.pageData(c, user), apiErr)
	}

	return c.Redirect(http.StatusSeeOther, medkitPath)
}

// pageData refetches the list so an error page still shows the
// user's current medicines. A failed fetch renders the page bare.
func (g Gateway) pageData(c echo.Context, user userentity.User) echo.Map {
	medicines, apiErr := g.usecase.GetMedicinesForOwner(request.Context(c), user.Sub)
	if apiErr != nil {
		medicines = []medicineentity.Medicine{}
	}

	return echo.Map{
		"Email":     user.Email,
		"Medicines": medicines,
	}
}

func sessionUser(c echo.Context) (userentity.User, *api.Error) {
	user, ok := session.UserFromContext(c)
	if !ok {
		err := errors.New("No session user on a protected route")
		return userentity.User{}, api.CommitError(err, auth.NoSessionCode, "Please log in to continue")
	}

	return user, nil
}

func bindInput(c echo.Context, user userentity.User) (medicineentity.Input, *api.Error) {
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		err = errors.Wrap(err, "Failed to parse quantity form field")
		return medicineentity.Input{}, api.CommitError(err,
			medicineerrors.BadMedicineDataCode,
			"Quantity must be a whole number")
	}

	return medicineentity.Input{
		UserSub:        user.Sub,
		Name:           c.FormValue("medicine_name"),
		Type:           c.FormValue("medicine_type"),
		Quantity:       quantity,
		ExpirationDate: c.FormValue("expiration_date"),
	}, nil
}
