package provisioning

import (
	middleware "polyconf/middlewares"
	"polyconf/polycom"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GenerateConfig - turns the configurator payload into <ext>.cfg
func GenerateConfig(c *gin.Context) {

	body, err := c.GetRawData()
	if err != nil {
		prov.fail(c, "GENERATE CONFIG", err)
		return
	}

	req, err := polycom.ParseRequest(body)
	if err != nil {
		prov.fail(c, "GENERATE CONFIG", err)
		return
	}

	file, err := polycom.Render(req)
	if err != nil {
		prov.fail(c, "GENERATE CONFIG", err)
		return
	}

	prov.Logger.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"file":       file.Name,
		"attendants": len(req.Attendants),
	}).Info("config generated")

	sendFile(c, file)
}
