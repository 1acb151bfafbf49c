package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards the admin area. Requests without a valid admin
// session are redirected to the login page; this is a browser surface, not
// an API, so there is no 401 body to speak of.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(h.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Sliding session: refresh the token once it is past the halfway
		// mark of its duration.
		if exp, ok := claims["exp"].(float64); ok {
			remaining := time.Until(time.Unix(int64(exp), 0))
			if remaining < TokenDuration/2 {
				if newToken, err := h.GenerateToken(); err == nil {
					h.setSessionCookie(w, newToken)
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
