package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Iotonix/osams/pkg/errors"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" parameter")
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func queryBoolPtr(c *gin.Context, name string) *bool {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return &v
		}
	}
	return nil
}

func queryInt64Ptr(c *gin.Context, name string) *int64 {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return &v
		}
	}
	return nil
}

func queryDatePtr(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+", expected YYYY-MM-DD")
	}
	return &date, nil
}
