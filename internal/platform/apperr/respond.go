package apperr

import (
	"github.com/labstack/echo/v4"
)

// JSON writes the tagged error envelope with its mapped status code.
func JSON(c echo.Context, err error) error {
	return c.JSON(Status(err), Envelope(err))
}
