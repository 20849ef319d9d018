package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter. A non-numeric or non-positive value
// is a malformed request, rejected before any service call.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
