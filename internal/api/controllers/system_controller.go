package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type SystemController struct{}

func NewSystemController() *SystemController {
	return &SystemController{}
}

func (s *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}

func (s *SystemController) Demo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Reached": "Backend"})
}

func (s *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *SystemController) Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
