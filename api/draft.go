package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	draftCookieName = "dada_draft"
	draftSessionTTL = time.Hour
)

// issueDraftCookie mints the signed draft-session cookie. The token carries
// only a session ID and an expiry; possession of a validly signed cookie is
// what switches rendering to the drafts perspective.
func issueDraftCookie(secret string) (*http.Cookie, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(draftSessionTTL)),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     draftCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(draftSessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func clearDraftCookie() *http.Cookie {
	return &http.Cookie{
		Name:     draftCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// draftCookieValid verifies the signature and expiry of the draft cookie.
// Any parse failure simply means no draft mode.
func draftCookieValid(r *http.Request, secret string) bool {
	if secret == "" {
		return false
	}
	cookie, err := r.Cookie(draftCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return err == nil && token.Valid
}

// DraftModeMiddleware flags draft-mode requests in the context and stamps
// them with a noindex header. robots.txt disallows the preview paths too;
// neither layer relies on the other.
func DraftModeMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			active := draftCookieValid(r, secret) ||
				strings.HasPrefix(r.URL.Path, "/preview") ||
				strings.HasPrefix(r.URL.Path, "/draft")

			if active {
				w.Header().Set("X-Robots-Tag", "noindex, nofollow")
				r = r.WithContext(ctxWithDraftMode(r.Context(), true))
			}

			next.ServeHTTP(w, r)
		})
	}
}
