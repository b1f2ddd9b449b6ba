package gateway

import (
	"fmt"
	"net/http"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/auth"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/errors"
	"github.com/medkit-app/medkit-be/src/server/internal/user/errors"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:                http.StatusInternalServerError,
	auth.BadCredentialsCode:             http.StatusUnauthorized,
	auth.NoSessionCode:                  http.StatusUnauthorized,
	auth.InvalidSessionCode:             http.StatusUnauthorized,
	auth.DuplicateAccountCode:           http.StatusConflict,
	auth.RateLimitedCode:                http.StatusTooManyRequests,
	usererrors.InvalidInputCode:         http.StatusUnprocessableEntity,
	medicineerrors.BadMedicineDataCode:  http.StatusUnprocessableEntity,
	medicineerrors.MedicineNotFoundCode: http.StatusNotFound,
}

// ErrorPage renders the originating form page again with the user facing
// message attached, using the HTTP status mapped from the error code.
// Extra template data for the page can be passed through data.
func ErrorPage(c echo.Context, page string, data echo.Map, apiErr *api.Error) error {
	statusCode, ok := httpStatusCodeMap[apiErr.ErrorCode]
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", apiErr.ErrorCode)
		panic(msg)
	}

	log.WithError(apiErr.InternalError).
		WithField("code", string(apiErr.ErrorCode)).
		WithField("status_code", statusCode).
		Error(apiErr.UserMessage)

	templateData := echo.Map{}
	for k, v := range data {
		templateData[k] = v
	}
	templateData["ErrorMessage"] = apiErr.UserMessage

	return c.Render(statusCode, page, templateData)
}
