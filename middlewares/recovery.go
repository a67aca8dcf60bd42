package middleware

import (
	"fmt"
	"net/http"

	"polyconf/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery - a panic in a handler becomes a plain 500 carrying its message
func Recovery(log *logrus.Logger) gin.HandlerFunc {

	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {

		err := &models.UnexpectedError{Err: fmt.Errorf("%v", recovered)}

		log.WithField("request_id", c.GetString(RequestIDKey)).Errorf("[RECOVERED] %v", err)

		c.String(http.StatusInternalServerError, err.Error())
		c.Abort()
	})
}
