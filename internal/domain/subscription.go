package domain

// Subscription mirrors GET /api/users/my/subscription.
type Subscription struct {
	HasSubscription  bool   `json:"has_subscription"`
	SubscriptionType string `json:"subscription_type"`
	DaysLeft         int    `json:"days_left"`
	ExpiresAt        string `json:"expires_at"`
}
