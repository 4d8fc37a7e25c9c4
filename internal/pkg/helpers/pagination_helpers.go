package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 100
)

// ParseSkipLimit extracts and validates offset pagination parameters from the
// request. skip must be >= 0 and limit must be in 1..MaxLimit; out-of-range or
// malformed values fall back to the defaults.
func ParseSkipLimit(c *gin.Context) (skip, limit int) {
	skipStr := c.DefaultQuery("skip", strconv.Itoa(DefaultSkip))
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		skip = DefaultSkip
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return skip, limit
}
