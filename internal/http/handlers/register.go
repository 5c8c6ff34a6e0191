package handlers

import (
	"errors"
	"net/http"

	"drivexam_web/internal/backend"
	"drivexam_web/internal/domain"
	"drivexam_web/internal/http/middleware"
	"drivexam_web/internal/i18n"
	"drivexam_web/internal/logger"
	"drivexam_web/internal/referral"
	"drivexam_web/internal/validate"

	"github.com/gin-gonic/gin"
)

// RegisterForm renders the registration page. The referral field resolves
// in order: code in the current URL, then the stored slot, then blank. A
// URL-borne code always overrides a stale stored one.
func (h *Handler) RegisterForm(c *gin.Context) {
	code := ""
	if v, ok := referral.FromQuery(c.Request.URL.Query()); ok {
		code = v
	} else if v, err := h.Store.Get(c.Request.Context(), visitorID(c)); err == nil {
		code = v
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"Lang":   h.lang(c),
		"Draft":  domain.RegistrationDraft{ReferralCode: code},
		"Errors": map[string]string{},
	})
}

// RegisterSubmit validates the draft and forwards it to the backend. The
// referral slot is cleared only after the backend accepts the registration;
// any failure leaves it intact so the user can retry.
func (h *Handler) RegisterSubmit(c *gin.Context) {
	lang := h.lang(c)

	var draft domain.RegistrationDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Lang":        lang,
			"ServerError": i18n.T(lang, "err.server"),
			"Draft":       domain.RegistrationDraft{},
			"Errors":      map[string]string{},
		})
		return
	}
	draft.ReferredUse = false
	draft.Money = 0

	if errs := validate.Draft(draft); len(errs) > 0 {
		middleware.CountRegisterSubmit("invalid")
		fieldErrs := make(map[string]string, len(errs))
		for field, key := range errs {
			fieldErrs[field] = i18n.T(lang, key)
		}
		c.HTML(http.StatusUnprocessableEntity, "register.html", gin.H{
			"Lang":   lang,
			"Errors": fieldErrs,
			"Draft":  redact(draft),
		})
		return
	}

	vid := visitorID(c)
	release, ok := h.beginSubmit(c.Request.Context(), vid)
	if !ok {
		c.HTML(http.StatusTooManyRequests, "register.html", gin.H{
			"Lang":        lang,
			"ServerError": i18n.T(lang, "err.server"),
			"Draft":       redact(draft),
			"Errors":      map[string]string{},
		})
		return
	}
	defer release()

	cookies, err := h.Backend.Register(c.Request.Context(), draft)
	if err != nil {
		middleware.CountRegisterSubmit("rejected")
		msg := i18n.T(lang, "err.server")
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Lang":        lang,
			"ServerError": msg,
			"Draft":       redact(draft),
			"Errors":      map[string]string{},
		})
		return
	}

	middleware.CountRegisterSubmit("ok")

	for _, ck := range cookies {
		http.SetCookie(c.Writer, ck)
	}
	if err := h.Store.Clear(c.Request.Context(), vid); err != nil {
		logger.Warn("failed to clear referral slot", "error", err)
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// redact drops passwords before a draft is echoed back into the form.
func redact(d domain.RegistrationDraft) domain.RegistrationDraft {
	d.Password = ""
	d.PasswordConfirm = ""
	return d
}
