package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/flash"
	"golang.org/x/crypto/argon2"
)

const (
	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour
)

// Argon2id parameters
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// HashPassword hashes a password using Argon2id and returns it as
// "salt$hash" in base64, the format ADMIN_PASSWORD_HASH expects.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword checks a password against an encoded "salt$hash" pair.
func VerifyPassword(password, encoded string) bool {
	parts := strings.SplitN(encoded, "$", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	sum := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(hash, sum) == 1
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// HandleLogin processes the admin login form.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	password := r.PostFormValue("password")
	if h.cfg.AdminPasswordHash == "" || !VerifyPassword(password, h.cfg.AdminPasswordHash) {
		flash.Set(w, flash.KindError, "Falsches Passwort")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.GenerateToken()
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	flash.Set(w, flash.KindSuccess, "Erfolgreich angemeldet")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleLogout clears the session cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	flash.Set(w, flash.KindSuccess, "Abgemeldet")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
		Secure:   h.cfg.SecureCookies,
	})
}
