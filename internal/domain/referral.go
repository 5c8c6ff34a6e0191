package domain

// ReferralRate is the commission rate attached to a referral code.
type ReferralRate struct {
	Value float64 `json:"value"`
}

// ReferralInfo mirrors GET /api/referrals/my and POST /api/referrals/.
type ReferralInfo struct {
	Code string       `json:"code"`
	Rate ReferralRate `json:"rate"`
}

// ReferralTransaction is one row of the referral earnings ledger.
type ReferralTransaction struct {
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	FromUser  string  `json:"from_user"`
	CreatedAt string  `json:"created_at"`
}

// ReferralLedger mirrors GET /api/referrals/transactions.
type ReferralLedger struct {
	Transactions    []ReferralTransaction `json:"transactions"`
	TotalEarned     float64               `json:"totalEarned"`
	TotalRegistered int                   `json:"totalRegistered"`
	TotalPurchased  int                   `json:"totalPurchased"`
}
