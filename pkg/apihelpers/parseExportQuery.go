package apihelpers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type ExportQuery struct {
	Format string
	Since  time.Time
}

// ParseExportQueryFromCtx reads ?format= and ?since= (unix seconds). Format defaults to defaultFormat.
func ParseExportQueryFromCtx(c *gin.Context, defaultFormat string) (*ExportQuery, error) {
	q := &ExportQuery{
		Format: c.DefaultQuery("format", defaultFormat),
	}

	if sinceStr := c.Query("since"); sinceStr != "" {
		since, err := strconv.ParseInt(sinceStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid since: %w", err)
		}
		q.Since = time.Unix(since, 0)
	}
	return q, nil
}
