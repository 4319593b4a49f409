package portfolio

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// render writes cmp as a text/html response with the given status code.
// Components stream directly into the response writer, so a component
// failure after the header is written cannot be recovered into an error
// page; the handlers resolve their data before calling render.
func render(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
