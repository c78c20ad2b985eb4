package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, Limit: 50, Offset: 0}},
		{"explicit", "page=3&limit=20", Params{Page: 3, Limit: 20, Offset: 40}},
		{"zero page falls back", "page=0&limit=10", Params{Page: 1, Limit: 10, Offset: 0}},
		{"negative limit falls back", "page=2&limit=-5", Params{Page: 2, Limit: 50, Offset: 50}},
		{"limit capped", "limit=10000", Params{Page: 1, Limit: 200, Offset: 0}},
		{"garbage ignored", "page=abc&limit=xyz", Params{Page: 1, Limit: 50, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(newTestContext(tt.query)))
		})
	}
}
