// Package handler translates HTTP requests into service calls.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"yardflow/internal/pagination"
)

// XPaginationHeader carries the page metadata of list responses as JSON.
const XPaginationHeader = "X-Pagination"

// listResponse is the body shape shared by all paginated endpoints.
type listResponse struct {
	Metadata pagination.Metadata `json:"metadata"`
	Data     interface{}         `json:"data"`
}

// pageParams reads pageNumber/pageSize from the query string and normalizes
// them. Absent or malformed values fall back to the defaults.
func pageParams(c echo.Context) pagination.Params {
	page, _ := strconv.Atoi(c.QueryParam("pageNumber"))
	size, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return pagination.Normalize(page, size)
}

// setPaginationHeader mirrors the page metadata into the X-Pagination header.
func setPaginationHeader(c echo.Context, meta pagination.Metadata) {
	if payload, err := json.Marshal(meta); err == nil {
		c.Response().Header().Set(XPaginationHeader, string(payload))
	}
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// validationMessages flattens validator errors into field-level messages.
func validationMessages(err error) map[string]string {
	messages := map[string]string{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		messages["body"] = err.Error()
		return messages
	}
	for _, fe := range fieldErrs {
		messages[fe.Field()] = fmt.Sprintf("failed on %q validation", fe.Tag())
	}
	return messages
}
