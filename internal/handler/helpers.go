package handler

import (
	"fmt"
	"net/http"
	"strconv"

	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

// parseId parses an identifier transported as a string. A malformed id is
// not a "not found": it surfaces as an internal error, keeping the two
// conditions apart.
func parseId(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("invalid %s", name),
			StatusCode: http.StatusInternalServerError,
		}
	}
	return id, nil
}
