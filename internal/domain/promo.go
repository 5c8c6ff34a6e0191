package domain

// PromoCode is a single promo code entry from the promo-codes endpoint.
type PromoCode struct {
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	UsedCount int    `json:"used_count"`
	ExpiresAt string `json:"expires_at"`
}

// PromoCodes mirrors GET /api/users/my/promo-codes.
type PromoCodes struct {
	Created []PromoCode `json:"created_promo_codes"`
	Used    []PromoCode `json:"used_promo_codes"`
}
