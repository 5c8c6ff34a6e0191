package referral

import (
	"context"
	"errors"
)

// ErrNoCode signals an empty slot: nothing was ever stored, or the slot was
// cleared after a successful registration.
var ErrNoCode = errors.New("referral: no code stored")

// Store holds at most one referral code per visitor. Set overwrites whatever
// was there before (last observed link wins), Clear is idempotent.
type Store interface {
	Get(ctx context.Context, visitorID string) (string, error)
	Set(ctx context.Context, visitorID, code string) error
	Clear(ctx context.Context, visitorID string) error
}
