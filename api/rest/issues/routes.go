package issues

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	issuesGroup := router.Group("/issues")
	{
		issuesGroup.GET("", ListIssuesHandler)
	}
}
