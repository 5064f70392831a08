package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles general HTTP requests.
type Controller struct {
	service string
}

// New creates a new Controller reporting the given service name.
func New(service string) *Controller {
	return &Controller{service: service}
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"service": con.service,
	})
}
