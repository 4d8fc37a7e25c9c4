package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/students?"+query, nil)
	return c
}

func TestParseSkipLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", 0, 100},
		{"explicit values", "skip=10&limit=25", 10, 25},
		{"limit at maximum", "limit=100", 0, 100},
		{"limit above maximum falls back", "limit=500", 0, 100},
		{"zero limit falls back", "limit=0", 0, 100},
		{"negative skip falls back", "skip=-5", 0, 100},
		{"malformed values fall back", "skip=abc&limit=xyz", 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := ParseSkipLimit(contextWithQuery(tt.query))
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
