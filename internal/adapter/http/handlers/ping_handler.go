package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string  "pong"
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
