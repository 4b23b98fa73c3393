package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cartonworks/stockline/internal/shared/constants"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", constants.DefaultPage, constants.DefaultPageSize},
		{"explicit", "?page=3&page_size=15", 3, 15},
		{"capped", "?page_size=1000", constants.DefaultPage, constants.MaxPageSize},
		{"garbage", "?page=abc&page_size=-4", constants.DefaultPage, constants.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/cartons"+tt.query, nil)

			p := ParsePagination(c)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
