package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/id"
)

// ParseSIDParam parses and validates a prefixed ID from a URL path parameter.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// ParseSIDList splits a comma separated query value into validated SIDs.
// Blank entries are skipped.
func ParseSIDList(raw, prefix, entityName string) ([]string, error) {
	var sids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := id.ValidatePrefix(part, prefix); err != nil {
			return nil, errors.NewValidationError(
				fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
			)
		}
		sids = append(sids, part)
	}
	return sids, nil
}

// ParseOptionalFloatQuery returns nil when key is absent.
func ParseOptionalFloatQuery(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.NewValidationError(key + " must be a number")
	}
	return &v, nil
}
