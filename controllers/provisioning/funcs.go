package provisioning

import (
	"errors"
	"mime"
	"net/http"

	"polyconf/log"
	middleware "polyconf/middlewares"
	"polyconf/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Action -
type Action struct {
	Logger *logrus.Logger
}

var prov = &Action{
	Logger: log.GetLogger(),
}

// sendFile - streams a generated file back as a download
func sendFile(c *gin.Context, file *models.File) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	c.Data(http.StatusOK, file.ContentType, file.Body)
	c.Abort()
}

// fail - logs the error and answers 500 with its text as a plain body
func (a *Action) fail(c *gin.Context, tag string, err error) {

	var malformed *models.MalformedInputError

	if !errors.As(err, &malformed) {
		err = &models.UnexpectedError{Err: err}
	}

	a.Logger.WithField("request_id", c.GetString(middleware.RequestIDKey)).Errorf("[%s] %v", tag, err)

	c.String(http.StatusInternalServerError, err.Error())
	c.Abort()
}
