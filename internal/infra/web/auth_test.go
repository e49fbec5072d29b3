// File: internal/infra/web/auth_test.go
package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAuthManager_MintAndVerify(t *testing.T) {
	a := NewAuthManager("secret", false, 30*time.Minute)

	rr := httptest.NewRecorder()
	signed, err := a.Mint(rr, 42)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if signed == "" {
		t.Fatal("empty token")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != "dashboard_session" || !c.HttpOnly {
		t.Errorf("cookie = %+v", c)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	studentID, err := a.Verify(req)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if studentID != 42 {
		t.Errorf("studentID = %d, want 42", studentID)
	}
}

func TestAuthManager_VerifyFailures(t *testing.T) {
	a := NewAuthManager("secret", false, 30*time.Minute)

	// No cookie at all.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := a.Verify(req); err == nil {
		t.Error("expected error without cookie")
	}

	// Token signed with a different secret.
	other := NewAuthManager("other-secret", false, 30*time.Minute)
	rr := httptest.NewRecorder()
	if _, err := other.Mint(rr, 42); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	if _, err := a.Verify(req); err == nil {
		t.Error("expected error for foreign signature")
	}

	// Expired token.
	expired := NewAuthManager("secret", false, -time.Minute)
	rr = httptest.NewRecorder()
	if _, err := expired.Mint(rr, 42); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	if _, err := a.Verify(req); err == nil {
		t.Error("expected error for expired token")
	}

	// Tampered token.
	rr = httptest.NewRecorder()
	if _, err := a.Mint(rr, 42); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	c := rr.Result().Cookies()[0]
	c.Value += "x"
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	if _, err := a.Verify(req); err == nil {
		t.Error("expected error for tampered token")
	}
}
