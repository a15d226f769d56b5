package playlearn

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderFragment writes an htmx partial. Partials are never cached.
func renderFragment(c echo.Context, cmp templ.Component) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	return Render(c, cmp)
}

// sendBinary writes generated bytes with the given content type.
func sendBinary(c echo.Context, contentType, disposition string, b []byte) error {
	if disposition != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	}
	return c.Blob(http.StatusOK, contentType, b)
}
