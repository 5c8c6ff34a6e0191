package handlers

import (
	"net/http"

	"drivexam_web/internal/pricing"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Lang": h.lang(c),
	})
}

func (h *Handler) Pricing(c *gin.Context) {
	c.HTML(http.StatusOK, "pricing.html", gin.H{
		"Lang":    h.lang(c),
		"Options": pricing.Options(),
	})
}
