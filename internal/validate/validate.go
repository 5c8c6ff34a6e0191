package validate

import (
	"regexp"
	"strings"

	"drivexam_web/internal/domain"
)

var (
	iinRe   = regexp.MustCompile(`^[0-9]{12}$`)
	phoneRe = regexp.MustCompile(`^\+7[0-9]{10}$`)
)

// Draft checks a registration draft and returns one message key per failing
// field (translated by the caller). An empty map means the draft passes.
// The referral code is deliberately unconstrained.
func Draft(d domain.RegistrationDraft) map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(d.FullName)) < 2 {
		errs["full_name"] = "err.full_name"
	}
	if !iinRe.MatchString(d.IIN) {
		errs["iin"] = "err.iin"
	}
	if !phoneRe.MatchString(d.Phone) {
		errs["phone"] = "err.phone"
	}
	if !Email(d.Email) {
		errs["email"] = "err.email"
	}
	if len(d.Password) < 6 {
		errs["password"] = "err.password"
	}
	if d.PasswordConfirm != d.Password {
		errs["password_confirm"] = "err.password_confirm"
	}

	return errs
}

// Email requires exactly one @, at least one character before it, a dot
// somewhere after it, and no whitespace. Server-side validation remains
// authoritative; this only catches obvious typos before a network call.
func Email(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}
	at := strings.Index(s, "@")
	if at < 1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}
