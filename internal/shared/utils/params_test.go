package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/id"
)

func TestParseSIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "ctn_abc123"}}

	sid, err := ParseSIDParam(c, "id", id.PrefixCarton, "carton")
	require.NoError(t, err)
	assert.Equal(t, "ctn_abc123", sid)

	_, err = ParseSIDParam(c, "id", id.PrefixDieline, "dieline")
	assert.True(t, errors.IsValidationError(err))
}

func TestParseSIDList(t *testing.T) {
	sids, err := ParseSIDList("dl_a, dl_b,,dl_c ", id.PrefixDieline, "dieline")
	require.NoError(t, err)
	assert.Equal(t, []string{"dl_a", "dl_b", "dl_c"}, sids)

	_, err = ParseSIDList("dl_a,ctn_b", id.PrefixDieline, "dieline")
	assert.Error(t, err)
}

func TestParseOptionalFloatQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?tolerance_mm=2.5&bad=zz", nil)

	v, err := ParseOptionalFloatQuery(c, "tolerance_mm")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2.5, *v)

	v, err = ParseOptionalFloatQuery(c, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOptionalFloatQuery(c, "bad")
	assert.Error(t, err)

	for _, raw := range []string{"NaN", "Inf", "+Inf", "-inf"} {
		c, _ = gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/x?tolerance_mm="+raw, nil)
		_, err = ParseOptionalFloatQuery(c, "tolerance_mm")
		assert.Error(t, err, raw)
	}
}
