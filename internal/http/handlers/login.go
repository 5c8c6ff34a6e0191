package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"drivexam_web/internal/backend"
	"drivexam_web/internal/i18n"

	"github.com/gin-gonic/gin"
)

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Lang":  h.lang(c),
		"Email": "",
	})
}

// LoginSubmit exchanges credentials with the backend and relays its session
// cookies to the browser.
func (h *Handler) LoginSubmit(c *gin.Context) {
	lang := h.lang(c)
	email := c.PostForm("email")
	password := c.PostForm("password")

	res, cookies, err := h.Backend.Login(c.Request.Context(), email, password)
	if err != nil {
		msg := i18n.T(lang, "err.server")
		var apiErr *backend.APIError
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			msg = i18n.T(lang, "err.credentials")
		case errors.As(err, &apiErr) && apiErr.Message != "":
			msg = apiErr.Message
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Lang":        lang,
			"ServerError": msg,
			"Email":       email,
		})
		return
	}

	for _, ck := range cookies {
		http.SetCookie(c.Writer, ck)
	}
	c.SetCookie(uidCookie, strconv.FormatInt(res.UserID, 10), 30*24*3600, "/", "", false, true)

	c.Redirect(http.StatusSeeOther, "/dashboard")
}
