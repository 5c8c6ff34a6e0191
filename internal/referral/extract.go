package referral

import (
	"context"
	"net/url"
)

// Both parameter names are accepted on any page. referralCode is checked
// first; ref is kept so older shared links keep working.
const (
	paramPrimary = "referralCode"
	paramLegacy  = "ref"
)

// FromQuery returns the referral code carried by a query string, if any.
// The code is treated as opaque, no format check is applied.
func FromQuery(values url.Values) (string, bool) {
	if v := values.Get(paramPrimary); v != "" {
		return v, true
	}
	if v := values.Get(paramLegacy); v != "" {
		return v, true
	}
	return "", false
}

// Capture stores a URL-borne code for the visitor and returns it. When the
// URL carries no code the store is left untouched and "" is returned. Safe
// to call on every navigation: an unchanged URL rewrites the same value.
func Capture(ctx context.Context, s Store, visitorID string, values url.Values) (string, error) {
	code, ok := FromQuery(values)
	if !ok {
		return "", nil
	}
	if err := s.Set(ctx, visitorID, code); err != nil {
		return "", err
	}
	return code, nil
}
