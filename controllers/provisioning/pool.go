package provisioning

import (
	"fmt"
	"net/http"

	middleware "polyconf/middlewares"
	"polyconf/roster"

	"github.com/gin-gonic/gin"
)

// ExportPool - returns the posted users as user_pool.json
func ExportPool(c *gin.Context) {

	body, err := c.GetRawData()
	if err != nil {
		prov.fail(c, "EXPORT POOL", err)
		return
	}

	users, err := roster.ParseExportRequest(body)
	if err != nil {
		prov.fail(c, "EXPORT POOL", err)
		return
	}

	file, err := roster.Export(users)
	if err != nil {
		prov.fail(c, "EXPORT POOL", err)
		return
	}

	sendFile(c, file)
}

// ImportPool - reads a user_pool.json back, numbering records without ids
func ImportPool(c *gin.Context) {

	var (
		pool *roster.Pool
		err  error
	)

	err = func() error {

		body, err := c.GetRawData()
		if err != nil {
			return err
		}

		pool, err = roster.Import(body)

		return err
	}()

	if err != nil {
		prov.Logger.WithField("request_id", c.GetString(middleware.RequestIDKey)).Errorf("[IMPORT POOL] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusText(http.StatusOK),
		"users":   pool.Users,
		"invalid": pool.Invalid,
	})
	c.Abort()
}
