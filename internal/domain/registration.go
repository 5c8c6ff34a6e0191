package domain

// RegistrationDraft is the payload for POST /api/auth/register.
//
// ReferredUse and Money are reserved fields the backend populates after
// registration; the client always sends them as constants (false, 0).
type RegistrationDraft struct {
	FullName        string `json:"full_name" form:"full_name"`
	IIN             string `json:"iin" form:"iin"`
	Phone           string `json:"phone" form:"phone"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
	ReferralCode    string `json:"referral_code,omitempty" form:"referral_code"`
	ReferredUse     bool   `json:"referred_use"`
	Money           int    `json:"money"`
}
