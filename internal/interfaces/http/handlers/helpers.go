package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

// currentUserID returns the operator id set by the auth middleware.
func currentUserID(c *gin.Context, log logger.Interface) (uint, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		log.Warnw("user_id not found in context", "ip", c.ClientIP())
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	userID, ok := raw.(uint)
	if !ok {
		log.Warnw("invalid user_id type in context", "user_id", raw, "ip", c.ClientIP())
		return 0, errors.NewInternalError("invalid user ID type")
	}
	return userID, nil
}

// parseDateQuery reads a YYYY-MM-DD query value as the start of that day in
// the business timezone, converted to UTC.
func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, biztime.Location())
	if err != nil {
		return nil, errors.NewValidationError(key + " must be a date in YYYY-MM-DD format")
	}
	utc := day.UTC()
	return &utc, nil
}

// sendWorkbook streams a rendered workbook as a download.
func sendWorkbook(c *gin.Context, prefix string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s-%s.xlsx", prefix, biztime.NowUTC().In(biztime.Location()).Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, buf.Bytes())
}
