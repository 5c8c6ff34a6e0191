package handlers

import (
	"net/http"
	"strconv"

	"drivexam_web/internal/domain"
	"drivexam_web/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the main authenticated view: subscription status plus
// test statistics. Any backend failure on these fetches is treated as a
// dead session and sends the user to the login page.
func (h *Handler) Dashboard(c *gin.Context) {
	lang := h.lang(c)
	sess := c.Request.Cookies()
	ctx := c.Request.Context()

	sub, err := h.Backend.MySubscription(ctx, sess)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var stats *domain.SimpleStats
	var recent []domain.RecentTest
	if uid, ok := userID(c); ok {
		stats, err = h.Backend.SimpleStats(ctx, sess, uid)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		recent, err = h.Backend.RecentTests(ctx, sess, uid)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Lang":         lang,
		"Subscription": sub,
		"DaysWord":     i18n.PluralDays(sub.DaysLeft, lang),
		"Stats":        stats,
		"RecentTests":  recent,
	})
}

// SubscriptionPage shows the subscription details alone.
func (h *Handler) SubscriptionPage(c *gin.Context) {
	lang := h.lang(c)

	sub, err := h.Backend.MySubscription(c.Request.Context(), c.Request.Cookies())
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(http.StatusOK, "subscription.html", gin.H{
		"Lang":         lang,
		"Subscription": sub,
		"DaysWord":     i18n.PluralDays(sub.DaysLeft, lang),
	})
}

// PromoCodesPage lists promo codes the user created and used.
func (h *Handler) PromoCodesPage(c *gin.Context) {
	codes, err := h.Backend.MyPromoCodes(c.Request.Context(), c.Request.Cookies())
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(http.StatusOK, "promo.html", gin.H{
		"Lang":    h.lang(c),
		"Created": codes.Created,
		"Used":    codes.Used,
	})
}

func userID(c *gin.Context) (int64, bool) {
	ck, err := c.Cookie(uidCookie)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(ck, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
