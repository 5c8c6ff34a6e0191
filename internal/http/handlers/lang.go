package handlers

import (
	"net/http"

	"drivexam_web/internal/i18n"

	"github.com/gin-gonic/gin"
)

// SetLang switches the language preference cookie and returns to the page
// the switch came from.
func (h *Handler) SetLang(c *gin.Context) {
	if lang, ok := i18n.Parse(c.PostForm("lang")); ok {
		c.SetCookie(i18n.CookieName, string(lang), 365*24*3600, "/", "", false, false)
	}

	back := c.Request.Referer()
	if back == "" {
		back = "/"
	}
	c.Redirect(http.StatusSeeOther, back)
}
