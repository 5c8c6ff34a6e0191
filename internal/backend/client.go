package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"drivexam_web/internal/domain"
)

// Client talks to the platform backend over JSON REST. Every successful
// response is wrapped in a {"status": "ok", "data": ...} envelope. The
// backend authenticates requests through session cookies, which callers
// forward from the inbound browser request.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
	Details struct {
		Message string `json:"message"`
	} `json:"details"`
}

// do issues one request and decodes the envelope into out (skipped when out
// is nil). Returned cookies are the backend's Set-Cookie values, so the
// caller can relay a fresh session to the browser.
func (c *Client) do(ctx context.Context, method, path string, sess []*http.Cookie, body, out any) ([]*http.Cookie, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range sess {
		req.AddCookie(ck)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var eb errorBody
		msg := ""
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			msg = eb.Message
			if msg == "" {
				msg = eb.Details.Message
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return nil, fmt.Errorf("decode response data: %w", err)
			}
		}
	}

	return resp.Cookies(), nil
}

// Register submits a registration draft. On success the backend opens a
// session; its cookies are returned for relaying to the browser.
func (c *Client) Register(ctx context.Context, draft domain.RegistrationDraft) ([]*http.Cookie, error) {
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil, draft, nil)
}

// LoginResult is the data portion of a successful login response.
type LoginResult struct {
	UserID int64 `json:"user_id"`
}

// Login exchanges credentials for a backend session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, []*http.Cookie, error) {
	body := map[string]string{"email": email, "password": password}
	var res LoginResult
	cookies, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &res)
	if err != nil {
		return nil, nil, err
	}
	return &res, cookies, nil
}

// MySubscription fetches the caller's subscription status.
func (c *Client) MySubscription(ctx context.Context, sess []*http.Cookie) (*domain.Subscription, error) {
	var sub domain.Subscription
	if _, err := c.do(ctx, http.MethodGet, "/api/users/my/subscription", sess, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// SimpleStats fetches aggregate test statistics for a user.
func (c *Client) SimpleStats(ctx context.Context, sess []*http.Cookie, userID int64) (*domain.SimpleStats, error) {
	var stats domain.SimpleStats
	path := fmt.Sprintf("/api/test-stats/user/%d/simple-stats", userID)
	if _, err := c.do(ctx, http.MethodGet, path, sess, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentTests fetches the user's most recent test attempts.
func (c *Client) RecentTests(ctx context.Context, sess []*http.Cookie, userID int64) ([]domain.RecentTest, error) {
	var tests []domain.RecentTest
	path := fmt.Sprintf("/api/test-stats/user/%d/recent-tests", userID)
	if _, err := c.do(ctx, http.MethodGet, path, sess, nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// MyPromoCodes fetches promo codes created and used by the caller.
func (c *Client) MyPromoCodes(ctx context.Context, sess []*http.Cookie) (*domain.PromoCodes, error) {
	var codes domain.PromoCodes
	if _, err := c.do(ctx, http.MethodGet, "/api/users/my/promo-codes", sess, nil, &codes); err != nil {
		return nil, err
	}
	return &codes, nil
}

// MyReferral fetches the caller's referral code. Returns ErrNotFound when no
// code has been created yet.
func (c *Client) MyReferral(ctx context.Context, sess []*http.Cookie) (*domain.ReferralInfo, error) {
	var info domain.ReferralInfo
	if _, err := c.do(ctx, http.MethodGet, "/api/referrals/my", sess, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateReferral creates a referral code for the caller.
func (c *Client) CreateReferral(ctx context.Context, sess []*http.Cookie) (*domain.ReferralInfo, error) {
	var info domain.ReferralInfo
	if _, err := c.do(ctx, http.MethodPost, "/api/referrals/", sess, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ReferralTransactions fetches the caller's referral earnings ledger.
func (c *Client) ReferralTransactions(ctx context.Context, sess []*http.Cookie) (*domain.ReferralLedger, error) {
	var ledger domain.ReferralLedger
	if _, err := c.do(ctx, http.MethodGet, "/api/referrals/transactions", sess, nil, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}
