package docs

import (
	"net/http"

	"codeberg.org/issuetracker/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serves the registered swagger document for instance name
func Handler(instanceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc(instanceName)
		if err != nil {
			errors.InternalError(c, "failed to render api document", err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
