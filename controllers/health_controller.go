package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	DB Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{DB: db}
}

// Health answers 200 in both states; the body carries the database result.
func (ctrl *HealthController) Health(c *gin.Context) {
	if err := ctrl.DB.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
