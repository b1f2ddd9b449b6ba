package testing

import (
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/medkit-app/medkit-be/src/server/internal/lib/render"
	"github.com/medkit-app/medkit-be/src/shared/config/local"
)

// PrepareEchoContext wires up a context with the real templates loaded,
// since almost every handler response is a rendered page.
func PrepareEchoContext(request *http.Request, response http.ResponseWriter) echo.Context {
	e := echo.New()
	e.Renderer = render.MustLoad(path.Join(local.ProjectRoot(), "frontend/templates/*.html"))
	return e.NewContext(request, response)
}
