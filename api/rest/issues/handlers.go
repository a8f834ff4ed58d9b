package issues

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListIssuesHandler godoc
// @Summary List issues
// @Description Returns the issue collection. Nothing is stored, so the list is always empty. Query parameters are ignored.
// @Tags issues
// @Produce json
// @Success 200 {array} Issue
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/issues [get]
func ListIssuesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, []Issue{})
}
