package folio

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/sh0ckwavezero/folio/views"
)

// Render writes cmp as a 200 HTML page. Routes added through
// WithCustomRoutes use it for pages outside the site layout.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus renders cmp into memory first, so a failing component turns
// into an error for the HTTPErrorHandler instead of a truncated page.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("folio: render %s: %w", c.Request().URL.Path, err)
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// renderPage wraps body in the site layout.
func (a *App) renderPage(c echo.Context, code int, meta views.PageMeta, jsonLD string, body templ.Component) error {
	return RenderStatus(c, code, a.Views.Layout(a.Config.view(), meta, jsonLD, body))
}
