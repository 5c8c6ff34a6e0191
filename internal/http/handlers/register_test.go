package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"drivexam_web/internal/backend"
	"drivexam_web/internal/http/middleware"
	"drivexam_web/internal/i18n"
	"drivexam_web/internal/referral"
	"drivexam_web/internal/session"

	"github.com/gin-gonic/gin"
)

// Minimal stand-in for register.html exposing the values the tests assert on.
const registerTpl = `ref={{.Draft.ReferralCode}};errs={{range $k, $v := .Errors}}[{{$k}}]{{end}}{{if .ServerError}};srv={{.ServerError}}{{end}}`

func newTestRouter(backendURL string, store referral.Store) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)
	m := session.NewManager("test-secret")

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("register.html").Parse(registerTpl)))

	h := New(backend.New(backendURL), store, m, nil, i18n.RU)
	grp := r.Group("/")
	grp.Use(middleware.Visitor(m), middleware.ReferralCapture(store))
	grp.GET("/register", h.RegisterForm)
	grp.POST("/register", h.RegisterSubmit)
	return r, m
}

// newVisitor performs one request so the middleware mints an identity, and
// returns the cookie plus the verified visitor ID for seeding the store.
func newVisitor(t *testing.T, r *gin.Engine, m *session.Manager) (*http.Cookie, string) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register", nil))

	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			id, err := m.Verify(ck.Value)
			if err != nil {
				t.Fatalf("verify issued cookie: %v", err)
			}
			return ck, id
		}
	}
	t.Fatal("no visitor cookie issued")
	return nil, ""
}

func getPage(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonDecodeBody(r *http.Request, v any) {
	_ = json.NewDecoder(r.Body).Decode(v)
}

func validForm() url.Values {
	v := url.Values{}
	v.Set("full_name", "Aidos Seitkali")
	v.Set("iin", "990101350123")
	v.Set("phone", "+77011234567")
	v.Set("email", "aidos@example.kz")
	v.Set("password", "secret1")
	v.Set("password_confirm", "secret1")
	return v
}

func TestRegisterFormURLOverridesStoredCode(t *testing.T) {
	store := referral.NewMemStore()
	r, m := newTestRouter("http://backend.invalid", store)

	ck, vid := newVisitor(t, r, m)
	store.Set(context.Background(), vid, "X")

	w := getPage(r, "/register?ref=Y", ck)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ref=Y;") {
		t.Fatalf("form should show the URL code, got %q", w.Body.String())
	}

	// the URL-borne code also replaced the stored one
	got, err := store.Get(context.Background(), vid)
	if err != nil || got != "Y" {
		t.Fatalf("stored (%q, %v); want (Y, nil)", got, err)
	}
}

func TestRegisterFormFallsBackToStoredCode(t *testing.T) {
	store := referral.NewMemStore()
	r, m := newTestRouter("http://backend.invalid", store)

	ck, vid := newVisitor(t, r, m)
	store.Set(context.Background(), vid, "X")

	w := getPage(r, "/register", ck)
	if !strings.Contains(w.Body.String(), "ref=X;") {
		t.Fatalf("form should fall back to the stored code, got %q", w.Body.String())
	}
}

func TestRegisterFormBlankWithoutCode(t *testing.T) {
	store := referral.NewMemStore()
	r, m := newTestRouter("http://backend.invalid", store)

	ck, _ := newVisitor(t, r, m)

	w := getPage(r, "/register", ck)
	if !strings.Contains(w.Body.String(), "ref=;") {
		t.Fatalf("form should be blank, got %q", w.Body.String())
	}
}

func TestRegisterValidationGate(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := referral.NewMemStore()
	r, m := newTestRouter(srv.URL, store)
	ck, _ := newVisitor(t, r, m)

	form := validForm()
	form.Set("iin", "12345")
	w := postForm(r, "/register", form, ck)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d; want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "[iin]") {
		t.Fatalf("expected iin error, got %q", w.Body.String())
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Fatalf("invalid draft reached the backend %d times", n)
	}

	w = postForm(r, "/register", validForm(), ck)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status %d; want 303", w.Code)
	}
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Fatalf("valid draft produced %d backend calls; want exactly 1", n)
	}
}

func TestReferralSlotClearedOnSuccessOnly(t *testing.T) {
	var status int64 = http.StatusInternalServerError
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := int(atomic.LoadInt64(&status))
		if code != http.StatusOK {
			w.WriteHeader(code)
			w.Write([]byte(`{"message":"registration unavailable"}`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := referral.NewMemStore()
	r, m := newTestRouter(srv.URL, store)
	ck, vid := newVisitor(t, r, m)
	ctx := context.Background()
	store.Set(ctx, vid, "KEEP")

	// failed submission must not clear the slot
	w := postForm(r, "/register", validForm(), ck)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d; want 200 with error banner", w.Code)
	}
	if !strings.Contains(w.Body.String(), "srv=registration unavailable") {
		t.Fatalf("expected backend message in banner, got %q", w.Body.String())
	}
	if got, err := store.Get(ctx, vid); err != nil || got != "KEEP" {
		t.Fatalf("slot after failure: (%q, %v); want (KEEP, nil)", got, err)
	}

	// successful submission clears it
	atomic.StoreInt64(&status, http.StatusOK)
	w = postForm(r, "/register", validForm(), ck)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status %d; want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirected to %q; want /dashboard", loc)
	}
	if _, err := store.Get(ctx, vid); !errors.Is(err, referral.ErrNoCode) {
		t.Fatalf("slot after success: %v; want ErrNoCode", err)
	}
}

func TestReferralCodeForwardedInDraft(t *testing.T) {
	gotCode := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ReferralCode string `json:"referral_code"`
		}
		jsonDecodeBody(r, &body)
		gotCode <- body.ReferralCode
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := referral.NewMemStore()
	r, m := newTestRouter(srv.URL, store)
	ck, _ := newVisitor(t, r, m)

	form := validForm()
	form.Set("referral_code", "FRIEND42")
	if w := postForm(r, "/register", form, ck); w.Code != http.StatusSeeOther {
		t.Fatalf("status %d; want 303", w.Code)
	}

	if code := <-gotCode; code != "FRIEND42" {
		t.Fatalf("backend received referral code %q; want FRIEND42", code)
	}
}
