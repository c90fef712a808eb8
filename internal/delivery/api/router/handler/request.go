package handler

import (
	"strconv"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func isJSONRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// bindAndValidate decodes a JSON or form body and runs the struct validation.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.NewValidationError("malformed request body")
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, domainerrors.NewValidationError("%s must be a positive integer", name)
	}

	return uint(id), nil
}
