package handlers

import (
	"errors"
	"net/http"

	"drivexam_web/internal/backend"
	"drivexam_web/internal/domain"
	"drivexam_web/internal/i18n"

	"github.com/gin-gonic/gin"
)

// ReferralsPage shows the user's referral code (if any) and the earnings
// ledger. A 404 from the backend means no code was created yet, which is a
// normal state, not an error.
func (h *Handler) ReferralsPage(c *gin.Context) {
	lang := h.lang(c)
	sess := c.Request.Cookies()
	ctx := c.Request.Context()

	var info *domain.ReferralInfo
	hasCode := true
	info, err := h.Backend.MyReferral(ctx, sess)
	switch {
	case errors.Is(err, backend.ErrNotFound):
		hasCode = false
	case errors.Is(err, backend.ErrUnauthorized):
		c.Redirect(http.StatusSeeOther, "/login")
		return
	case err != nil:
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var ledger *domain.ReferralLedger
	if hasCode {
		ledger, err = h.Backend.ReferralTransactions(ctx, sess)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
	}

	c.HTML(http.StatusOK, "referrals.html", gin.H{
		"Lang":    lang,
		"HasCode": hasCode,
		"Info":    info,
		"Ledger":  ledger,
	})
}

// ReferralCreate asks the backend to issue a referral code for the caller.
func (h *Handler) ReferralCreate(c *gin.Context) {
	lang := h.lang(c)

	info, err := h.Backend.CreateReferral(c.Request.Context(), c.Request.Cookies())
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		c.HTML(http.StatusOK, "referrals.html", gin.H{
			"Lang":        lang,
			"HasCode":     false,
			"ServerError": i18n.T(lang, "err.server"),
		})
		return
	}

	c.HTML(http.StatusOK, "referrals.html", gin.H{
		"Lang":    lang,
		"HasCode": true,
		"Info":    info,
	})
}
