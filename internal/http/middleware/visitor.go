package middleware

import (
	"net/http"

	"drivexam_web/internal/logger"
	"drivexam_web/internal/referral"
	"drivexam_web/internal/session"

	"github.com/gin-gonic/gin"
)

// VisitorKey is the gin context key under which the verified visitor ID is
// stored.
const VisitorKey = "visitor_id"

// Visitor makes sure every page request carries a verified visitor identity.
// A missing or tampered cookie gets replaced with a fresh one.
func Visitor(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ck, err := c.Cookie(session.CookieName); err == nil {
			if id, err := m.Verify(ck); err == nil {
				c.Set(VisitorKey, id)
				c.Next()
				return
			}
		}

		id, token, err := m.Issue()
		if err != nil {
			logger.Error("failed to issue visitor identity", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetCookie(session.CookieName, token, session.CookieMaxAge, "/", "", false, true)
		c.Set(VisitorKey, id)
		c.Next()
	}
}

// ReferralCapture runs on every page navigation, before the handler renders,
// so a referral link can land on any page and still be remembered. Runs at
// most once per request and only mutates the slot when the URL carries a
// code.
func ReferralCapture(store referral.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			vid := c.GetString(VisitorKey)
			if vid != "" {
				if _, err := referral.Capture(c.Request.Context(), store, vid, c.Request.URL.Query()); err != nil {
					logger.Warn("referral capture failed", "error", err)
				}
			}
		}
		c.Next()
	}
}
