package handlers

import (
	"context"
	"time"

	"drivexam_web/internal/backend"
	"drivexam_web/internal/http/middleware"
	"drivexam_web/internal/i18n"
	"drivexam_web/internal/referral"
	"drivexam_web/internal/session"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// uidCookie carries the backend user ID after login, needed for the
// test-stats endpoints which are addressed by user ID.
const uidCookie = "dx_uid"

type Handler struct {
	Backend     *backend.Client
	Store       referral.Store
	Sessions    *session.Manager
	Redis       *redis.Client // optional; guards concurrent submits
	DefaultLang i18n.Lang
}

func New(client *backend.Client, store referral.Store, sessions *session.Manager, rdb *redis.Client, defaultLang i18n.Lang) *Handler {
	return &Handler{
		Backend:     client,
		Store:       store,
		Sessions:    sessions,
		Redis:       rdb,
		DefaultLang: defaultLang,
	}
}

func (h *Handler) lang(c *gin.Context) i18n.Lang {
	return i18n.FromRequest(c.Request, h.DefaultLang)
}

func visitorID(c *gin.Context) string {
	return c.GetString(middleware.VisitorKey)
}

// beginSubmit takes the per-visitor submission lock. Only one registration
// request may be in flight at a time; without Redis the guard fails open.
func (h *Handler) beginSubmit(ctx context.Context, visitorID string) (release func(), ok bool) {
	if h.Redis == nil {
		return func() {}, true
	}

	key := "register:inflight:" + visitorID
	acquired, err := h.Redis.SetNX(ctx, key, "1", 30*time.Second).Result()
	if err != nil {
		return func() {}, true
	}
	if !acquired {
		return nil, false
	}
	return func() {
		h.Redis.Del(context.Background(), key)
	}, true
}
