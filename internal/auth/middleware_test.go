package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return tokenString
}

func runMiddleware(handler *AuthHandler, tokenString string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/admin", nil)
	if tokenString != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
	}
	rr := httptest.NewRecorder()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler.AuthMiddleware(nextHandler).ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg)

	t.Run("NoCookie", func(t *testing.T) {
		rr := runMiddleware(handler, "")
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("expected redirect, got %v", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %q", loc)
		}
	})

	t.Run("ValidToken", func(t *testing.T) {
		tokenString := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(TokenDuration).Unix(),
		})
		rr := runMiddleware(handler, tokenString)
		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		tokenString := signedToken(t, "other-secret", jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(TokenDuration).Unix(),
		})
		rr := runMiddleware(handler, tokenString)
		if rr.Code != http.StatusSeeOther {
			t.Errorf("expected redirect for bad signature, got %v", rr.Code)
		}
	})

	t.Run("MissingRole", func(t *testing.T) {
		tokenString := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
			"exp": time.Now().Add(TokenDuration).Unix(),
		})
		rr := runMiddleware(handler, tokenString)
		if rr.Code != http.StatusSeeOther {
			t.Errorf("expected redirect for missing role claim, got %v", rr.Code)
		}
	})
}

func TestAuthMiddleware_SlidingSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg)

	t.Run("TokenRenewed", func(t *testing.T) {
		// Expires in 11 hours, less than TokenDuration/2 = 12 hours.
		tokenString := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(11 * time.Hour).Unix(),
		})
		rr := runMiddleware(handler, tokenString)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %v", rr.Code)
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
			}
		}
		if !found {
			t.Errorf("expected new auth_token cookie to be set")
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		// Expires in 13 hours, more than TokenDuration/2 = 12 hours.
		tokenString := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(13 * time.Hour).Unix(),
		})
		rr := runMiddleware(handler, tokenString)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %v", rr.Code)
		}
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				t.Errorf("did not expect a new auth_token cookie to be set")
			}
		}
	})
}
