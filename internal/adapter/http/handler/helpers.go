package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam extracts a numeric identifier from the URL path. Non-numeric
// and non-positive values are rejected here, before any storage access.
func ParseIDParam(c *gin.Context, param string) (int64, error) {
	idStr := c.Param(param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", param, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", param)
	}
	return id, nil
}

// HandleInvalidID handles a malformed identifier path parameter.
func HandleInvalidID(c *gin.Context, paramName string) {
	respondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+paramName)
}
